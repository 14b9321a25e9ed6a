// Package targets maps an audit category to the artifact names searched for
// inside each environment directory.
package targets

import "github.com/redactyl/footprint/internal/types"

var (
	credentials = []string{"Login Data", "logins.json"}
	sessions    = []string{"Cookies", "Network/Cookies", "cookies.sqlite"}
	extended    = []string{"Web Data", "History", "Local State"}
)

// Resolve returns the ordered candidate names for a category. Names may hold
// a forward-slash relative path. The result is a fresh slice.
func Resolve(c types.AuditCategory) []string {
	var out []string
	switch c {
	case types.Credentials:
		out = append(out, credentials...)
	case types.Sessions:
		out = append(out, sessions...)
	case types.Comprehensive:
		out = append(out, credentials...)
		out = append(out, sessions...)
		out = append(out, extended...)
	}
	return out
}
