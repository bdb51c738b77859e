package fluidcss

import (
	"math"
	"sort"
	"strconv"
)

// epsilon is the gap between 1 and the next representable float64.
// Added before rounding so values sitting a representation error below a
// rounding boundary still land on it.
var epsilon = math.Nextafter(1, 2) - 1

// Lerp linearly interpolates between x and y. a is unrestricted; values
// outside [0,1] extrapolate.
func Lerp(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

// ClampValue bounds a into [min, max].
func ClampValue(a, min, max float64) float64 {
	return math.Min(max, math.Max(min, a))
}

// InverseLerp returns how far a sits between x and y, bounded to [0,1].
// x == y is a caller error and yields NaN.
func InverseLerp(x, y, a float64) float64 {
	return ClampValue((a-x)/(y-x), 0, 1)
}

// RangeMap remaps a from the domain [x1,y1] into the range [x2,y2].
// Because InverseLerp bounds its result, RangeMap never extrapolates
// outside [x2,y2] even when a lies outside [x1,y1].
func RangeMap(x1, y1, x2, y2, a float64) float64 {
	return Lerp(x2, y2, InverseLerp(x1, y1, a))
}

// RoundValue rounds n to 4 decimal places, half toward positive
// infinity, with an epsilon nudge to counter binary representation
// error.
func RoundValue(n float64) float64 {
	return math.Floor((n+epsilon)*10000+0.5) / 10000
}

// sortAscending returns a numerically ascending copy of values, leaving
// the caller's slice untouched.
func sortAscending(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// formatNumber renders v the way CSS expects: shortest decimal form, no
// trailing zeros, no exponent for the magnitudes scales produce.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
