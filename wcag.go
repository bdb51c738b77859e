package fluidcss

// CheckWCAG evaluates a linear font-size interpolation against the
// WCAG 1.4.4 resize requirement: at 200% zoom, text must render at
// least twice its unzoomed size.
//
// The interpolation is modelled as a clamped line. At 5x zoom the
// effective viewport shrinks fivefold, so the zoomed curve is
// clamp(5·min, 5·intercept + slope·vw, 5·max) with the slope unchanged.
// The zoomed curve sits lowest at vw = 5·MinWidth and the unzoomed curve
// peaks at vw = MaxWidth, so a violation can only appear at one of those
// two widths; both are checked in that order.
//
// Returns the first violating viewport width, or nil when the
// interpolation passes.
func CheckWCAG(c WCAGConfig) *float64 {
	slope := (c.Max - c.Min) / (c.MaxWidth - c.MinWidth)
	intercept := c.Min - c.MinWidth*slope

	zoom1 := func(vw float64) float64 {
		return ClampValue(intercept+slope*vw, c.Min, c.Max)
	}
	zoom5 := func(vw float64) float64 {
		return ClampValue(5*intercept+slope*vw, 5*c.Min, 5*c.Max)
	}

	if w := 5 * c.MinWidth; zoom5(w) < 2*zoom1(w) {
		return &w
	}
	if w := c.MaxWidth; zoom5(w) < 2*zoom1(w) {
		return &w
	}
	return nil
}
