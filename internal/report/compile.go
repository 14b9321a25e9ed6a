// Package report renders scan entries: the per-category audit file and the
// table, text and JSON views printed to stdout.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/redactyl/footprint/internal/types"
	"github.com/spf13/afero"
)

// ErrNoData is returned by Compile when there is nothing to write.
var ErrNoData = errors.New("no surface data found for compiled report")

// HostTimeLayout formats HostProfile.AuditTime.
const HostTimeLayout = "2006-01-02 15:04:05"

const rule = "===================================================="

// Filename is the report file name for a category.
func Filename(c types.AuditCategory) string {
	return "footprint_" + strings.ToLower(c.String()) + "_audit.txt"
}

// FormatSize prints a kilobyte value with at least one fractional digit.
func FormatSize(kb float64) string {
	s := strconv.FormatFloat(kb, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Line renders one entry the way it appears in the report file.
func Line(e types.ScanEntry) string {
	return fmt.Sprintf("[%s] %s -> %s (%s KB) | Active: %s | Path: %s",
		e.Status, e.Environment, e.Target, FormatSize(e.SizeKB), e.ModifiedString(), e.Path)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// WriteText writes the full report body to w.
func WriteText(w io.Writer, entries []types.ScanEntry, c types.AuditCategory, host types.HostProfile) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, " FOOTPRINT AUDIT REPORT: %s\n", strings.ToUpper(c.String()))
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, " Hostname: %s\n", host.Hostname)
	fmt.Fprintf(bw, " OS Version: %s\n", host.OSVersion)
	fmt.Fprintf(bw, " Architecture: %s\n", host.Architecture)
	fmt.Fprintf(bw, " Elevated Privileges: %s\n", yesNo(host.Elevated))
	fmt.Fprintf(bw, " Audit Time: %s\n", host.AuditTime.Format(HostTimeLayout))
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw)
	for _, e := range entries {
		fmt.Fprintln(bw, Line(e))
	}
	return bw.Flush()
}

// Compile writes the category's report into dir, replacing any previous
// run, and returns the written path. With no entries nothing is written and
// ErrNoData is returned.
func Compile(fsys afero.Fs, dir string, entries []types.ScanEntry, c types.AuditCategory, host types.HostProfile) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoData
	}
	path := filepath.Join(dir, Filename(c))
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := WriteText(f, entries, c, host); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
