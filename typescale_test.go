package fluidcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTypeConfig() TypeScaleConfig {
	return TypeScaleConfig{
		MinWidth:     320,
		MaxWidth:     1240,
		MinFontSize:  18,
		MaxFontSize:  20,
		MinTypeScale: 1.2,
		MaxTypeScale: 1.25,
	}
}

func TestCalculateTypeScaleStepOrder(t *testing.T) {
	c := defaultTypeConfig()
	c.PositiveSteps = 2
	c.NegativeSteps = 2

	steps := CalculateTypeScale(c)

	require.Len(t, steps, 5)
	for i, want := range []int{2, 1, 0, -1, -2} {
		assert.Equal(t, want, steps[i].Step)
	}
}

func TestCalculateTypeScaleDefaultsToBaseStepOnly(t *testing.T) {
	steps := CalculateTypeScale(defaultTypeConfig())

	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Step)
	assert.Equal(t, 18.0, steps[0].MinFontSize)
	assert.Equal(t, 20.0, steps[0].MaxFontSize)
}

func TestCalculateTypeScaleValues(t *testing.T) {
	c := defaultTypeConfig()
	c.PositiveSteps = 2
	c.NegativeSteps = 2

	steps := CalculateTypeScale(c)
	require.Len(t, steps, 5)

	// Step +2: 18*1.2^2=25.92 at the narrow end, 20*1.25^2=31.25 wide.
	assert.Equal(t, 25.92, steps[0].MinFontSize)
	assert.Equal(t, 31.25, steps[0].MaxFontSize)
	assert.Equal(t, "clamp(1.62rem, 1.5041rem + 0.5793vi, 1.9531rem)", steps[0].Clamp)

	// Step 0 is the configured base interpolation.
	assert.Equal(t, "clamp(1.125rem, 1.0815rem + 0.2174vi, 1.25rem)", steps[2].Clamp)

	// Step -2 divides by the scale twice.
	assert.Equal(t, 12.5, steps[4].MinFontSize)
	assert.Equal(t, 12.8, steps[4].MaxFontSize)
	assert.Equal(t, "clamp(0.7813rem, 0.7747rem + 0.0326vi, 0.8rem)", steps[4].Clamp)

	for _, s := range steps {
		assert.Nil(t, s.WCAGViolation, "step %d", s.Step)
	}
}

func TestCalculateTypeScaleFlagsWCAGViolations(t *testing.T) {
	// An aggressive span fails the zoom check on the base step already.
	steps := CalculateTypeScale(TypeScaleConfig{
		MinWidth:     320,
		MaxWidth:     1240,
		MinFontSize:  16,
		MaxFontSize:  100,
		MinTypeScale: 1.2,
		MaxTypeScale: 1.25,
	})

	require.Len(t, steps, 1)
	require.NotNil(t, steps[0].WCAGViolation)
	assert.Equal(t, 1600.0, *steps[0].WCAGViolation)
}

func TestCalculateTypeScaleRelativeTo(t *testing.T) {
	c := defaultTypeConfig()
	c.RelativeTo = RelativeToContainer

	steps := CalculateTypeScale(c)
	require.Len(t, steps, 1)
	assert.Contains(t, steps[0].Clamp, "cqi,")
}

func TestCalculateTypeScaleNegativeCountsTreatedAsZero(t *testing.T) {
	c := defaultTypeConfig()
	c.PositiveSteps = -3
	c.NegativeSteps = -1

	steps := CalculateTypeScale(c)
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Step)
}
