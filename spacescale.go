package fluidcss

import (
	"math"
	"strconv"
	"strings"
)

// spaceLabel derives the t-shirt label for a step index. The ladder is
// fixed: 0→s, -1→xs, below that {|step|}xs; 1→m, 2→l, 3→xl, above that
// {step-2}xl.
func spaceLabel(step int) string {
	switch {
	case step == 0:
		return "s"
	case step == -1:
		return "xs"
	case step < -1:
		return strconv.Itoa(-step) + "xs"
	case step == 1:
		return "m"
	case step == 2:
		return "l"
	case step == 3:
		return "xl"
	default:
		return strconv.Itoa(step-2) + "xl"
	}
}

// calculateSpaceSize sizes one step of the scale. The multiplier applies
// to the base sizes and the results round to whole pixels; fractional
// spacing steps are not worth the subpixel noise they add.
func calculateSpaceSize(c SpaceScaleConfig, multiplier float64, step int) SpaceSize {
	minSize := RoundValue(math.Floor(c.MinSize*multiplier + 0.5))
	maxSize := RoundValue(math.Floor(c.MaxSize*multiplier + 0.5))
	return spaceSizeBetween(c, spaceLabel(step), minSize, maxSize)
}

// spaceSizeBetween assembles a SpaceSize spanning minSize..maxSize with
// both rem and px clamp forms.
func spaceSizeBetween(c SpaceScaleConfig, label string, minSize, maxSize float64) SpaceSize {
	base := ClampConfig{
		MinWidth:   c.MinWidth,
		MaxWidth:   c.MaxWidth,
		MinSize:    minSize,
		MaxSize:    maxSize,
		RelativeTo: c.RelativeTo,
	}
	px := base
	px.UsePx = true
	return SpaceSize{
		Label:   label,
		MinSize: minSize,
		MaxSize: maxSize,
		Clamp:   CalculateClamp(base),
		ClampPx: CalculateClamp(px),
	}
}

// CalculateSpaceScale builds the full space scale for c: the base size
// ladder (largest step first), one-up pairs spanning each adjacent step,
// and any custom pairs requested by label.
func CalculateSpaceScale(c SpaceScaleConfig) SpaceScale {
	positive := make([]SpaceSize, 0, len(c.PositiveSteps))
	for i, multiplier := range sortAscending(c.PositiveSteps) {
		positive = append(positive, calculateSpaceSize(c, multiplier, i+1))
	}
	reverseSizes(positive)

	descending := sortAscending(c.NegativeSteps)
	reverseFloats(descending)
	negative := make([]SpaceSize, 0, len(descending))
	for i, multiplier := range descending {
		negative = append(negative, calculateSpaceSize(c, multiplier, -(i+1)))
	}

	sizes := make([]SpaceSize, 0, len(positive)+1+len(negative))
	sizes = append(sizes, positive...)
	sizes = append(sizes, calculateSpaceSize(c, 1, 0))
	sizes = append(sizes, negative...)

	return SpaceScale{
		Sizes:       sizes,
		OneUpPairs:  oneUpPairs(c, sizes),
		CustomPairs: customPairs(c, sizes),
	}
}

// oneUpPairs derives the adjacent-step ranges. Sizes arrive largest
// first, so they are reversed into ascending order and each element
// pairs with its immediate predecessor; the smallest size has none.
func oneUpPairs(c SpaceScaleConfig, sizes []SpaceSize) []SpaceSize {
	ascending := make([]SpaceSize, len(sizes))
	copy(ascending, sizes)
	reverseSizes(ascending)

	pairs := make([]SpaceSize, 0, max(len(ascending)-1, 0))
	for i := 1; i < len(ascending); i++ {
		from, to := ascending[i-1], ascending[i]
		pairs = append(pairs, spaceSizeBetween(c, from.Label+"-"+to.Label, from.MinSize, to.MaxSize))
	}
	return pairs
}

// customPairs resolves user-requested "{from}-{to}" ranges against the
// generated labels. Malformed entries and labels that match no size are
// dropped, not surfaced as errors; a design token request for a step
// that does not exist simply yields no token.
func customPairs(c SpaceScaleConfig, sizes []SpaceSize) []SpaceSize {
	pairs := make([]SpaceSize, 0, len(c.CustomSizes))
	for _, name := range c.CustomSizes {
		parts := strings.Split(name, "-")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		from, ok := lookupSize(sizes, parts[0])
		if !ok {
			continue
		}
		to, ok := lookupSize(sizes, parts[1])
		if !ok {
			continue
		}
		pairs = append(pairs, spaceSizeBetween(c, from.Label+"-"+to.Label, from.MinSize, to.MaxSize))
	}
	return pairs
}

func lookupSize(sizes []SpaceSize, label string) (SpaceSize, bool) {
	for _, s := range sizes {
		if s.Label == label {
			return s, true
		}
	}
	return SpaceSize{}, false
}

func reverseSizes(s []SpaceSize) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
