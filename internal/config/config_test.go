package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fluidcss"
)

func loadValid(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)
	return doc
}

func TestLoadValid(t *testing.T) {
	doc := loadValid(t)

	assert.Equal(t, "viewport", doc.RelativeTo)
	assert.Equal(t, "fl", doc.Prefix)

	require.NotNil(t, doc.Type)
	assert.Equal(t, 320.0, doc.Type.MinWidth)
	assert.Equal(t, 5, doc.Type.PositiveSteps)

	require.NotNil(t, doc.Space)
	assert.Equal(t, []float64{1.5, 2, 3}, doc.Space.PositiveSteps)
	assert.Equal(t, []string{"s-l"}, doc.Space.CustomSizes)

	require.NotNil(t, doc.Clamps)
	assert.Equal(t, [][]float64{{16, 24}, {16, 48}}, doc.Clamps.Pairs)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo_field")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestValidateValid(t *testing.T) {
	doc := loadValid(t)
	assert.Nil(t, Validate(doc))
}

func TestValidateInvertedWidths(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "inverted_widths.yaml"))
	require.NoError(t, err)

	violations := Validate(doc)
	require.NotEmpty(t, violations)
}

func TestValidateEmptyDocument(t *testing.T) {
	violations := Validate(&Document{})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "at least one")
}

func TestValidateBadRelativeTo(t *testing.T) {
	doc := loadValid(t)
	doc.RelativeTo = "parent"

	violations := Validate(doc)
	require.NotEmpty(t, violations)
}

func TestValidateBadPairArity(t *testing.T) {
	doc := loadValid(t)
	doc.Clamps.Pairs = append(doc.Clamps.Pairs, []float64{16, 24, 32})

	violations := Validate(doc)
	require.NotEmpty(t, violations)
}

func TestValidateMalformedCustomSize(t *testing.T) {
	doc := loadValid(t)
	doc.Space.CustomSizes = []string{"s--l"}

	violations := Validate(doc)
	require.NotEmpty(t, violations)
}

func TestConversionCarriesRelativeTo(t *testing.T) {
	doc := loadValid(t)
	doc.RelativeTo = "container"

	assert.Equal(t, fluidcss.RelativeToContainer, doc.TypeConfig().RelativeTo)
	assert.Equal(t, fluidcss.RelativeToContainer, doc.SpaceConfig().RelativeTo)
	assert.Equal(t, fluidcss.RelativeToContainer, doc.ClampsConfig().RelativeTo)
}

func TestClampsConfigPairs(t *testing.T) {
	doc := loadValid(t)
	got := doc.ClampsConfig()
	assert.Equal(t, [][2]float64{{16, 24}, {16, 48}}, got.Pairs)
}

func TestHashDeterministic(t *testing.T) {
	a := loadValid(t)
	b := loadValid(t)

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64)
}

func TestHashChangesWithValues(t *testing.T) {
	a := loadValid(t)
	b := loadValid(t)
	b.Space.MaxSize = 32

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	assert.NotEqual(t, ha, hb)
}

func TestHashNormalizesUnicode(t *testing.T) {
	a := loadValid(t)
	b := loadValid(t)
	a.Prefix = "caf\u00e9"  // composed e-acute
	b.Prefix = "cafe\u0301" // e + combining acute

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
}
