package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/redactyl/footprint/internal/types"
)

// Document is the JSON form of one audit.
type Document struct {
	Category string            `json:"category"`
	Host     types.HostProfile `json:"host"`
	Entries  []types.ScanEntry `json:"entries"`
}

// NewDocument never carries a nil entry list so consumers always see an array.
func NewDocument(entries []types.ScanEntry, c types.AuditCategory, host types.HostProfile) Document {
	if entries == nil {
		entries = []types.ScanEntry{}
	}
	return Document{Category: c.String(), Host: host, Entries: entries}
}

// WriteJSON pretty-prints doc. With highlight set the output is colorized
// for a 256-color terminal.
func WriteJSON(w io.Writer, doc Document, highlight bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if !highlight {
		_, err := w.Write(buf.Bytes())
		return err
	}
	_, err := io.WriteString(w, highlightJSON(buf.String()))
	return err
}

// ReadJSON decodes a document written by WriteJSON.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	err := json.NewDecoder(r).Decode(&doc)
	return doc, err
}

func highlightJSON(src string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}
