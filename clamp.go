package fluidcss

import "fmt"

// relativeUnit maps a RelativeTo value to its CSS unit. Unknown or empty
// values fall back to vi.
func relativeUnit(r RelativeTo) string {
	switch r {
	case RelativeToViewportWidth:
		return "vw"
	case RelativeToContainer:
		return "cqi"
	default:
		return "vi"
	}
}

// CalculateClamp synthesizes a CSS clamp() expression that interpolates
// linearly from (MinWidth, MinSize) to (MaxWidth, MaxSize).
//
// The preferred term is the line through the two endpoints expressed as
// "intercept + slope·100<unit>", where <unit> is one percent of the
// chosen relative basis. Sizes convert to rem (divide by 16) unless
// UsePx is set. When MinSize exceeds MaxSize the numeric bounds swap so
// the first clamp argument stays the smaller one, as CSS requires, while
// the preferred term keeps its negative slope.
func CalculateClamp(c ClampConfig) string {
	lower, upper := c.MinSize, c.MaxSize
	if c.MinSize > c.MaxSize {
		lower, upper = c.MaxSize, c.MinSize
	}

	divider, unit := 16.0, "rem"
	if c.UsePx {
		divider, unit = 1.0, "px"
	}

	slope := (c.MaxSize/divider - c.MinSize/divider) / (c.MaxWidth/divider - c.MinWidth/divider)
	intersection := -1*(c.MinWidth/divider)*slope + c.MinSize/divider

	return fmt.Sprintf("clamp(%s%s, %s%s + %s%s, %s%s)",
		formatNumber(RoundValue(lower/divider)), unit,
		formatNumber(RoundValue(intersection)), unit,
		formatNumber(RoundValue(slope*100)), relativeUnit(c.RelativeTo),
		formatNumber(RoundValue(upper/divider)), unit,
	)
}

// CalculateClamps maps each (minSize, maxSize) pair through the
// synthesizer, labelling results "{minSize}-{maxSize}". Every entry
// carries both the rem and the px form.
func CalculateClamps(c ClampsConfig) []ClampResult {
	results := make([]ClampResult, 0, len(c.Pairs))
	for _, pair := range c.Pairs {
		minSize, maxSize := pair[0], pair[1]
		base := ClampConfig{
			MinWidth:   c.MinWidth,
			MaxWidth:   c.MaxWidth,
			MinSize:    minSize,
			MaxSize:    maxSize,
			RelativeTo: c.RelativeTo,
		}
		px := base
		px.UsePx = true
		results = append(results, ClampResult{
			Label:   formatNumber(minSize) + "-" + formatNumber(maxSize),
			Clamp:   CalculateClamp(base),
			ClampPx: CalculateClamp(px),
		})
	}
	return results
}
