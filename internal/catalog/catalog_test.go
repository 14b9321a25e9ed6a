package catalog

import (
	"path/filepath"
	"testing"

	"github.com/redactyl/footprint/internal/layout"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winPaths() Paths {
	return Paths{
		GOOS:    "windows",
		Local:   filepath.FromSlash("/host/AppData/Local"),
		Roaming: filepath.FromSlash("/host/AppData/Roaming"),
		Home:    filepath.FromSlash("/host"),
	}
}

func TestResolve_BuiltinOnPlatform(t *testing.T) {
	envs := Resolve(winPaths(), nil)
	require.Len(t, envs, len(Builtin))

	assert.Equal(t, "Google Chrome", envs[0].Name)
	assert.Equal(t, filepath.FromSlash("/host/AppData/Local/Google/Chrome/User Data"), envs[0].Root)
	assert.Equal(t, layout.KindFixed, envs[0].Layout.Kind())

	var firefox bool
	for _, e := range envs {
		if e.Name == "Mozilla Firefox" {
			firefox = true
			assert.Equal(t, filepath.FromSlash("/host/AppData/Roaming/Mozilla/Firefox/Profiles"), e.Root)
			assert.Equal(t, layout.KindProfiles, e.Layout.Kind())
		}
	}
	assert.True(t, firefox)
}

func TestResolve_EmptyOnOtherPlatforms(t *testing.T) {
	p := winPaths()
	p.GOOS = "linux"
	assert.Empty(t, Resolve(p, nil))
}

func TestResolve_CustomEntriesOnAnyPlatform(t *testing.T) {
	p := Paths{GOOS: "linux", Home: filepath.FromSlash("/home/op")}
	custom := []Entry{{
		Name:   "Chromium",
		Roots:  []string{"{home}/.config/chromium", "{home}/snap/chromium/common/chromium"},
		Layout: layout.Fixed{},
	}}
	envs := Resolve(p, custom)
	require.Len(t, envs, 2)
	assert.Equal(t, filepath.FromSlash("/home/op/.config/chromium"), envs[0].Root)
	assert.Equal(t, filepath.FromSlash("/home/op/snap/chromium/common/chromium"), envs[1].Root)
}

func TestResolve_DropsTemplatesWithUnknownBase(t *testing.T) {
	p := winPaths()
	p.Roaming = ""
	for _, e := range Resolve(p, nil) {
		assert.NotContains(t, []string{"Opera Stable", "Opera GX", "Mozilla Firefox", "Waterfox"}, e.Name)
	}
}

func TestResolve_IsPure(t *testing.T) {
	assert.Equal(t, Resolve(winPaths(), nil), Resolve(winPaths(), nil))
}

func TestMerge_ReplacesByName(t *testing.T) {
	custom := []Entry{
		{Name: "Brave", Roots: []string{"{home}/brave"}, Layout: layout.Fixed{}},
		{Name: "Thunderbird", Roots: []string{"{roaming}/Thunderbird/Profiles"}, Layout: layout.Profiles{}},
	}
	merged := Merge(Builtin, custom)
	require.Len(t, merged, len(Builtin)+1)
	for i, e := range merged {
		if e.Name == "Brave" {
			assert.Equal(t, []string{"{home}/brave"}, e.Roots)
			assert.Equal(t, "Brave", Builtin[i].Name, "replacement keeps position")
		}
	}
	assert.Equal(t, "Thunderbird", merged[len(merged)-1].Name)
	assert.Equal(t, "{local}/BraveSoftware/Brave-Browser/User Data", Builtin[3].Roots[0], "builtin table untouched")
}

func TestExpand(t *testing.T) {
	p := winPaths()
	got, ok := Expand("{local}/Vivaldi/User Data", p)
	require.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/host/AppData/Local/Vivaldi/User Data"), got)

	_, ok = Expand("relative/path", p)
	assert.False(t, ok)

	got, ok = Expand(filepath.FromSlash("/opt/app/data"), p)
	require.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/opt/app/data"), got)
}

func TestEntryValidate(t *testing.T) {
	ok := Entry{Name: "x", Roots: []string{"{home}/x"}, Layout: layout.Fixed{}}
	assert.NoError(t, ok.Validate())

	tooMany := ok
	tooMany.Roots = []string{"a", "b", "c", "d"}
	assert.Error(t, tooMany.Validate())

	noName := ok
	noName.Name = " "
	assert.Error(t, noName.Validate())

	noLayout := ok
	noLayout.Layout = nil
	assert.Error(t, noLayout.Validate())
}

func TestCatalog_CandidatesMatchesResolve(t *testing.T) {
	c := Catalog{Paths: winPaths()}
	assert.Equal(t, Resolve(winPaths(), nil), c.Candidates(afero.NewMemMapFs()))
}
