package fluidcss

import "math"

// typeSizeAt evaluates the scale's font size at the given viewport
// width and step. Both the base font size and the scale ratio are
// range-mapped across [MinWidth, MaxWidth] before the exponent applies,
// so intermediate viewports interpolate both factors at once.
func typeSizeAt(c TypeScaleConfig, viewport float64, step int) float64 {
	scale := RangeMap(c.MinWidth, c.MaxWidth, c.MinTypeScale, c.MaxTypeScale, viewport)
	fontSize := RangeMap(c.MinWidth, c.MaxWidth, c.MinFontSize, c.MaxFontSize, viewport)
	return fontSize * math.Pow(scale, float64(step))
}

func calculateTypeStep(c TypeScaleConfig, step int) TypeStep {
	minSize := typeSizeAt(c, c.MinWidth, step)
	maxSize := typeSizeAt(c, c.MaxWidth, step)

	return TypeStep{
		Step:        step,
		MinFontSize: RoundValue(minSize),
		MaxFontSize: RoundValue(maxSize),
		WCAGViolation: CheckWCAG(WCAGConfig{
			Min:      minSize,
			Max:      maxSize,
			MinWidth: c.MinWidth,
			MaxWidth: c.MaxWidth,
		}),
		Clamp: CalculateClamp(ClampConfig{
			MinWidth:   c.MinWidth,
			MaxWidth:   c.MaxWidth,
			MinSize:    minSize,
			MaxSize:    maxSize,
			RelativeTo: c.RelativeTo,
		}),
	}
}

// CalculateTypeScale builds the full type scale for c: steps
// +PositiveSteps down through 0 down to -NegativeSteps, largest first.
// Each step is independently synthesized into a clamp and checked
// against WCAG 1.4.4 using its own evaluated endpoints.
func CalculateTypeScale(c TypeScaleConfig) []TypeStep {
	positive := max(c.PositiveSteps, 0)
	negative := max(c.NegativeSteps, 0)

	steps := make([]TypeStep, 0, positive+negative+1)
	for step := positive; step >= -negative; step-- {
		steps = append(steps, calculateTypeStep(c, step))
	}
	return steps
}
