package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/redactyl/footprint/internal/layout"
)

// ModifiedLayout is the minute-precision timestamp format used for artifacts.
const ModifiedLayout = "2006-01-02 15:04"

// AuditCategory selects which family of artifacts a scan looks for.
type AuditCategory int

const (
	Credentials AuditCategory = iota + 1
	Sessions
	Comprehensive
)

// Categories lists every category in menu order.
var Categories = []AuditCategory{Credentials, Sessions, Comprehensive}

func (c AuditCategory) String() string {
	switch c {
	case Credentials:
		return "Credentials"
	case Sessions:
		return "Sessions"
	case Comprehensive:
		return "Comprehensive"
	default:
		return fmt.Sprintf("AuditCategory(%d)", int(c))
	}
}

// ParseCategory accepts a category name (case-insensitive) or its menu number.
// "logins" and "cookies" are accepted as aliases.
func ParseCategory(s string) (AuditCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credentials", "logins", "1":
		return Credentials, nil
	case "sessions", "cookies", "2":
		return Sessions, nil
	case "comprehensive", "all", "3":
		return Comprehensive, nil
	}
	return 0, fmt.Errorf("unknown audit category %q (want credentials|sessions|comprehensive)", s)
}

// AccessStatus reports whether the current process may read an artifact.
type AccessStatus string

const (
	Exposed AccessStatus = "EXPOSED"
	Locked  AccessStatus = "LOCKED"
)

// Environment is one installed application whose root directory existed at
// discovery time. Layout decides which directories under Root are searched.
type Environment struct {
	Name   string          `json:"name"`
	Root   string          `json:"root"`
	Layout layout.Strategy `json:"-"`
}

// ScanEntry describes one artifact file found under an environment.
type ScanEntry struct {
	ID          string       `json:"id"`
	Environment string       `json:"environment"`
	Target      string       `json:"target"`
	SizeKB      float64      `json:"size_kb"`
	Modified    time.Time    `json:"modified"`
	Status      AccessStatus `json:"status"`
	Path        string       `json:"path"`
}

// ModifiedString formats the modification time to minute precision.
func (e ScanEntry) ModifiedString() string {
	return e.Modified.Format(ModifiedLayout)
}

// HostProfile is computed once at startup and is read-only afterwards.
type HostProfile struct {
	Hostname     string    `json:"hostname"`
	OSVersion    string    `json:"os_version"`
	Architecture string    `json:"architecture"`
	Elevated     bool      `json:"elevated"`
	AuditTime    time.Time `json:"audit_time"`
}
