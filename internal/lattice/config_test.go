package lattice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()

	assert.Equal(t, "balanced", layout.Name)
	assert.Equal(t, MapperBalanced, layout.Mapper)
	require.Len(t, layout.Regions, 9)
	assert.Equal(t, "Center", layout.Regions["00"])
	assert.Equal(t, "Southeast", layout.Regions["12"])

	m, err := layout.NewMapper()
	require.NoError(t, err)
	require.NoError(t, Validate(m))
}

func TestCompileLayoutMissingRegion(t *testing.T) {
	src := `layout: {
		name:   "partial"
		extent: 13
		mapper: "balanced"
		regions: {"00": "Center"}
	}`

	_, err := CompileLayoutString(src)
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeRegionTable, le.Code)
}

func TestCompileLayoutDuplicateRegionName(t *testing.T) {
	src := `layout: {
		name:   "dup"
		extent: 13
		mapper: "balanced"
		regions: {
			"00": "Center", "01": "Center", "02": "South"
			"10": "East", "11": "Northeast", "12": "Southeast"
			"20": "West", "21": "Northwest", "22": "Southwest"
		}
	}`

	_, err := CompileLayoutString(src)
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeRegionTable, le.Code)
}

func TestCompileLayoutWrongExtent(t *testing.T) {
	src := `layout: {
		name:   "wide"
		extent: 20
		mapper: "balanced"
		regions: {
			"00": "Center", "01": "North", "02": "South"
			"10": "East", "11": "Northeast", "12": "Southeast"
			"20": "West", "21": "Northwest", "22": "Southwest"
		}
	}`

	_, err := CompileLayoutString(src)
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeLayoutField, le.Code)
}

func TestCompileLayoutUnknownMapper(t *testing.T) {
	src := `layout: {
		name:   "mystery"
		extent: 13
		mapper: "spiral"
		regions: {
			"00": "Center", "01": "North", "02": "South"
			"10": "East", "11": "Northeast", "12": "Southeast"
			"20": "West", "21": "Northwest", "22": "Southwest"
		}
	}`

	_, err := CompileLayoutString(src)
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeLayoutField, le.Code)
}

func TestCompileLayoutMissingLayoutStruct(t *testing.T) {
	_, err := CompileLayoutString(`other: {name: "x"}`)
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeLayoutField, le.Code)
}

func TestLoadLayoutFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.cue")
	require.NoError(t, os.WriteFile(path, []byte(defaultLayoutCUE), 0o644))

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "balanced", layout.Name)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "absent.cue"))
	require.Error(t, err)
	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeLayoutRead, le.Code)
}

// Region names are NFC-normalized at load time, so the decomposed form of a
// name compares equal to the composed form after loading.
func TestRegionNamesNormalized(t *testing.T) {
	src := "layout: {\n" +
		"\tname:   \"accents\"\n" +
		"\textent: 13\n" +
		"\tmapper: \"balanced\"\n" +
		"\tregions: {\n" +
		"\t\t\"00\": \"Cœur\", \"01\": \"Nord\", \"02\": \"Sud\"\n" +
		"\t\t\"10\": \"Est\", \"11\": \"Nord-Est\", \"12\": \"Sud-Est\"\n" +
		"\t\t\"20\": \"Ouest\", \"21\": \"Nord-Ouest\", \"22\": \"Sude\\u0301\"\n" + // e + combining acute
		"\t}\n" +
		"}"

	layout, err := CompileLayoutString(src)
	require.NoError(t, err)
	assert.Equal(t, "Sudé", layout.Regions["22"]) // composed after NFC
}
