package theme_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gridcols/distribute"
	"github.com/katalvlaran/gridcols/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys extracts the Key column from values.
func keys(vs []theme.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Key
	}

	return out
}

// TestDefault_Keys yields "1".."12" in numeric order.
func TestDefault_Keys(t *testing.T) {
	got := keys(theme.Default().Keys())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}, got)

	assert.Equal(t, got, keys(theme.Theme{}.Keys()), "zero theme falls back to defaults")
}

// TestKeys_DerivedFromScale keeps only positive integer keys of the scale.
func TestKeys_DerivedFromScale(t *testing.T) {
	th := theme.Theme{GridTemplateColumns: map[string]string{
		"1":       "repeat(1, minmax(0, 1fr))",
		"16":      "repeat(16, minmax(0, 1fr))",
		"4":       "repeat(4, minmax(0, 1fr))",
		"0":       "none",
		"none":    "none",
		"subgrid": "subgrid",
		"sidebar": "200px minmax(900px, 1fr) 100px",
	}}
	vs := th.Keys()
	assert.Equal(t, []string{"1", "4", "16"}, keys(vs))
	assert.Equal(t, "16", vs[2].Raw)
}

// TestKeys_ExplicitWins ignores the scale when values are present and orders
// non-integer keys last.
func TestKeys_ExplicitWins(t *testing.T) {
	th := theme.Theme{
		Values:              map[string]string{"b": "3", "2": "2", "a": "x", "10": "10"},
		GridTemplateColumns: map[string]string{"7": "x"},
	}
	assert.Equal(t, []string{"2", "10", "a", "b"}, keys(th.Keys()))
}

// TestStrategyList resolves names, drops duplicates and rejects unknowns.
func TestStrategyList(t *testing.T) {
	all, err := theme.Theme{}.StrategyList()
	require.NoError(t, err)
	assert.Equal(t, distribute.Strategies(), all)

	got, err := theme.Theme{Strategies: []string{"evenly", "grid-cols-start", "evenly"}}.StrategyList()
	require.NoError(t, err)
	assert.Equal(t, []distribute.Strategy{distribute.Evenly, distribute.Start}, got)

	_, err = theme.Theme{Strategies: []string{"stretch"}}.StrategyList()
	assert.ErrorIs(t, err, distribute.ErrUnknownStrategy)
}

// TestDistributeOptions maps the center config onto Compute.
func TestDistributeOptions(t *testing.T) {
	opts, err := theme.Theme{Center: theme.CenterConfig{Formula: "shifted"}, MaxTarget: 4}.DistributeOptions()
	require.NoError(t, err)

	r, err := distribute.CenterRule(3, opts...)
	require.NoError(t, err)
	end, ok := r.Lookup("> *:nth-last-child(1):nth-child(3n + 1)")
	require.True(t, ok)
	assert.Equal(t, -4, end)

	_, err = distribute.CenterRule(5, opts...)
	assert.ErrorIs(t, err, distribute.ErrTargetTooLarge)

	_, err = theme.Theme{Center: theme.CenterConfig{Formula: "geometric"}}.DistributeOptions()
	assert.ErrorIs(t, err, distribute.ErrUnknownFormula)

	_, err = theme.Theme{MaxTarget: -1}.DistributeOptions()
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

// assertFixture checks the theme shared by testdata/theme.{yaml,hcl}.
func assertFixture(t *testing.T, th theme.Theme) {
	t.Helper()
	assert.Equal(t, "tw-", th.Prefix)
	assert.Equal(t, []string{"2", "3", "10", "wide"}, keys(th.Keys()))
	assert.Equal(t, "abc", th.Values["wide"])
	assert.Equal(t, "shifted", th.Center.Formula)
	assert.True(t, th.Center.InclusiveIndex)
	assert.Equal(t, 64, th.MaxTarget)

	ss, err := th.StrategyList()
	require.NoError(t, err)
	assert.Equal(t, []distribute.Strategy{distribute.Center, distribute.Between}, ss)
}

// TestLoadFile_YAML decodes the YAML fixture.
func TestLoadFile_YAML(t *testing.T) {
	th, err := theme.LoadFile(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)
	assertFixture(t, th)
}

// TestLoadFile_HCL decodes the HCL fixture, numbers included.
func TestLoadFile_HCL(t *testing.T) {
	th, err := theme.LoadFile(filepath.Join("testdata", "theme.hcl"))
	require.NoError(t, err)
	assertFixture(t, th)
	assert.Equal(t, "10", th.Values["10"])
}

// TestLoadFile_Errors covers extension, missing file and schema errors.
func TestLoadFile_Errors(t *testing.T) {
	_, err := theme.LoadFile("theme.json")
	assert.ErrorIs(t, err, theme.ErrUnsupportedFormat)

	_, err = theme.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = theme.LoadYAML(strings.NewReader("colour: red\n"))
	assert.ErrorIs(t, err, theme.ErrDecode)

	_, err = theme.LoadYAML(strings.NewReader("strategies: [stretch]\n"))
	assert.ErrorIs(t, err, distribute.ErrUnknownStrategy)

	_, err = theme.LoadHCL("bad.hcl", []byte(`prefix = `))
	assert.ErrorIs(t, err, theme.ErrDecode)

	_, err = theme.LoadHCL("bad.hcl", []byte(`colour = "red"`))
	assert.ErrorIs(t, err, theme.ErrDecode)

	_, err = theme.LoadHCL("bad.hcl", []byte(`grid_template_columns_center = ["1", "2"]`))
	assert.ErrorIs(t, err, theme.ErrDecode)

	_, err = theme.LoadHCL("bad.hcl", []byte(`grid_template_columns_center = { "1" = true }`))
	assert.ErrorIs(t, err, theme.ErrDecode)

	_, err = theme.LoadHCL("bad.hcl", []byte("center {\n  formula = \"geometric\"\n}\n"))
	assert.ErrorIs(t, err, distribute.ErrUnknownFormula)
}

// TestLoad_Empty yields the zero theme for empty documents.
func TestLoad_Empty(t *testing.T) {
	th, err := theme.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Len(t, th.Keys(), theme.DefaultValueCount)

	th, err = theme.LoadHCL("empty.hcl", nil)
	require.NoError(t, err)
	assert.Len(t, th.Keys(), theme.DefaultValueCount)
	assert.Nil(t, th.Values)
}

// TestLoadHCL_DerivedScale derives values from grid_template_columns.
func TestLoadHCL_DerivedScale(t *testing.T) {
	src := []byte(`grid_template_columns = { "3" = "repeat(3, minmax(0, 1fr))", none = "none", "6" = 6 }`)
	th, err := theme.LoadHCL("scale.hcl", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6"}, keys(th.Keys()))
}
