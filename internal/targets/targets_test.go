package targets

import (
	"testing"

	"github.com/redactyl/footprint/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Credentials(t *testing.T) {
	assert.Equal(t, []string{"Login Data", "logins.json"}, Resolve(types.Credentials))
}

func TestResolve_Sessions(t *testing.T) {
	assert.Equal(t, []string{"Cookies", "Network/Cookies", "cookies.sqlite"}, Resolve(types.Sessions))
}

func TestResolve_ComprehensiveIsUnionPlusExtras(t *testing.T) {
	all := Resolve(types.Comprehensive)

	want := map[string]bool{"Web Data": true, "History": true, "Local State": true}
	for _, n := range Resolve(types.Credentials) {
		want[n] = true
	}
	for _, n := range Resolve(types.Sessions) {
		want[n] = true
	}

	got := map[string]bool{}
	for _, n := range all {
		assert.False(t, got[n], "duplicate target %q", n)
		got[n] = true
	}
	assert.Equal(t, want, got)
}

func TestResolve_ReturnsCopy(t *testing.T) {
	a := Resolve(types.Credentials)
	a[0] = "mutated"
	assert.Equal(t, "Login Data", Resolve(types.Credentials)[0])
}

func TestResolve_UnknownCategory(t *testing.T) {
	assert.Empty(t, Resolve(types.AuditCategory(99)))
}
