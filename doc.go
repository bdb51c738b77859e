// Package fluidcss computes fluid, viewport-responsive size scales and
// renders them as CSS clamp() expressions.
//
// A fluid size interpolates linearly between two breakpoints instead of
// stepping discretely. Given the size wanted at a narrow viewport and the
// size wanted at a wide one, CalculateClamp produces a static formula the
// browser evaluates on its own; no runtime JavaScript is involved:
//
//	css := fluidcss.CalculateClamp(fluidcss.ClampConfig{
//		MinWidth: 320,
//		MaxWidth: 1240,
//		MinSize:  16,
//		MaxSize:  24,
//	})
//	// clamp(1rem, 0.8261rem + 0.8696vi, 1.5rem)
//
// On top of the single-clamp primitive the package derives whole scales:
// CalculateTypeScale builds an exponential font-size ladder and checks
// each step against WCAG 1.4.4 zoom requirements, CalculateSpaceScale
// builds a multiplier-based spacing ladder with named steps and derived
// step-pair ranges, and CalculateClamps maps a list of size pairs through
// the synthesizer in one call.
//
// Every function in this package is pure: identical inputs always produce
// identical outputs, nothing is cached, and no call touches the clock,
// the filesystem, or the network. Degenerate numeric input (equal
// breakpoints, inverted widths) is not recovered; non-finite values
// propagate into the output string.
//
// The fluidcss CLI under cmd/fluidcss drives this package from YAML scale
// definitions and writes stylesheet and design-token artifacts.
package fluidcss
