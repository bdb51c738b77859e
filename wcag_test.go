package fluidcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWCAGPasses(t *testing.T) {
	got := CheckWCAG(WCAGConfig{Min: 16, Max: 24, MinWidth: 320, MaxWidth: 1240})
	assert.Nil(t, got)
}

func TestCheckWCAGConstantSizeNeverViolates(t *testing.T) {
	// Zero slope: zoomed text is always exactly 5x the base, which
	// trivially satisfies the 2x requirement.
	for _, size := range []float64{1, 12, 16, 100} {
		got := CheckWCAG(WCAGConfig{Min: size, Max: size, MinWidth: 320, MaxWidth: 1240})
		assert.Nil(t, got, "size=%v", size)
	}
}

func TestCheckWCAGViolationAtZoomedFloor(t *testing.T) {
	// Steep growth: at 5x zoom and a 1600px viewport the zoomed curve
	// bottoms out at 5*16=80 while the unzoomed curve has already
	// reached its 100px cap.
	got := CheckWCAG(WCAGConfig{Min: 16, Max: 100, MinWidth: 320, MaxWidth: 1240})
	require.NotNil(t, got)
	assert.Equal(t, 1600.0, *got, "reported width is 5x the minimum breakpoint")
}

func TestCheckWCAGViolationAtMaxWidth(t *testing.T) {
	// The zoomed floor passes at 5*100=500 but the unzoomed peak at
	// 1240px outruns twice the zoomed size there.
	got := CheckWCAG(WCAGConfig{Min: 8, Max: 30, MinWidth: 100, MaxWidth: 1240})
	require.NotNil(t, got)
	assert.Equal(t, 1240.0, *got)
}

func TestCheckWCAGChecksZoomedFloorFirst(t *testing.T) {
	// When the max breakpoint sits below 5x the min breakpoint, both
	// critical points reduce to the same comparison; the zoomed-floor
	// width must be the one reported.
	got := CheckWCAG(WCAGConfig{Min: 10, Max: 60, MinWidth: 320, MaxWidth: 1240})
	require.NotNil(t, got)
	assert.Equal(t, 1600.0, *got)
}
