package fluidcss

// RelativeTo selects the CSS relative unit used in the interpolation term
// of a generated clamp() expression.
type RelativeTo string

const (
	// RelativeToViewport emits vi (viewport inline-size) units.
	// This is the default when RelativeTo is left empty.
	RelativeToViewport RelativeTo = "viewport"

	// RelativeToViewportWidth emits vw units.
	RelativeToViewportWidth RelativeTo = "viewport-width"

	// RelativeToContainer emits cqi (container inline-size) units, for
	// sizes that should track a container query context instead of the
	// viewport.
	RelativeToContainer RelativeTo = "container"
)

// ValidRelativeTo defines the allowed RelativeTo values.
var ValidRelativeTo = map[RelativeTo]bool{
	RelativeToViewport:      true,
	RelativeToViewportWidth: true,
	RelativeToContainer:     true,
}

// ClampConfig describes one linear interpolation between two breakpoints.
// Widths are viewport pixels; sizes are in the same base unit (pixels).
// MinWidth must be less than MaxWidth; MinSize may exceed MaxSize, which
// produces a valid shrinking scale.
type ClampConfig struct {
	MinWidth float64 `json:"min_width"`
	MaxWidth float64 `json:"max_width"`
	MinSize  float64 `json:"min_size"`
	MaxSize  float64 `json:"max_size"`

	// UsePx keeps the emitted bounds in px instead of converting to rem.
	UsePx bool `json:"use_px,omitempty"`

	RelativeTo RelativeTo `json:"relative_to,omitempty"`
}

// ClampsConfig describes a batch of size pairs sharing one breakpoint
// range. Each pair is (minSize, maxSize).
type ClampsConfig struct {
	MinWidth float64      `json:"min_width"`
	MaxWidth float64      `json:"max_width"`
	Pairs    [][2]float64 `json:"pairs"`

	RelativeTo RelativeTo `json:"relative_to,omitempty"`
}

// ClampResult is one synthesized clamp in both rem and px units.
// Label identifies the pair it came from, e.g. "16-24".
type ClampResult struct {
	Label   string `json:"label"`
	Clamp   string `json:"clamp"`
	ClampPx string `json:"clamp_px"`
}

// WCAGConfig describes a linear font-size interpolation to check against
// the WCAG 1.4.4 zoom requirement. Min and Max are the font sizes at
// MinWidth and MaxWidth.
type WCAGConfig struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	MinWidth float64 `json:"min_width"`
	MaxWidth float64 `json:"max_width"`
}

// TypeScaleConfig describes an exponential fluid type scale. The base
// font size interpolates from MinFontSize to MaxFontSize across the
// breakpoint range, and the scale ratio interpolates from MinTypeScale to
// MaxTypeScale; step n sizes at fontSize·ratioⁿ. Step counts default to
// zero, leaving only the base step.
type TypeScaleConfig struct {
	MinWidth     float64 `json:"min_width"`
	MaxWidth     float64 `json:"max_width"`
	MinFontSize  float64 `json:"min_font_size"`
	MaxFontSize  float64 `json:"max_font_size"`
	MinTypeScale float64 `json:"min_type_scale"`
	MaxTypeScale float64 `json:"max_type_scale"`

	PositiveSteps int `json:"positive_steps,omitempty"`
	NegativeSteps int `json:"negative_steps,omitempty"`

	RelativeTo RelativeTo `json:"relative_to,omitempty"`
}

// TypeStep is one step of a type scale. Step 0 is the base size,
// positive steps are larger, negative steps smaller. WCAGViolation is
// the first viewport width at which the step fails the zoom check, or
// nil when the step passes.
type TypeStep struct {
	Step          int      `json:"step"`
	MinFontSize   float64  `json:"min_font_size"`
	MaxFontSize   float64  `json:"max_font_size"`
	WCAGViolation *float64 `json:"wcag_violation"`
	Clamp         string   `json:"clamp"`
}

// SpaceScaleConfig describes a multiplier-based fluid space scale.
// PositiveSteps and NegativeSteps are multipliers applied to the base
// MinSize/MaxSize (e.g. 1.5, 2 above the base and 0.75, 0.5 below);
// they are sorted before step indices are assigned, so callers may list
// them in any order. CustomSizes names extra step-pair ranges to derive,
// each formatted "{fromLabel}-{toLabel}"; entries that do not resolve
// against the generated labels are dropped silently.
type SpaceScaleConfig struct {
	MinWidth float64 `json:"min_width"`
	MaxWidth float64 `json:"max_width"`
	MinSize  float64 `json:"min_size"`
	MaxSize  float64 `json:"max_size"`

	PositiveSteps []float64 `json:"positive_steps,omitempty"`
	NegativeSteps []float64 `json:"negative_steps,omitempty"`
	CustomSizes   []string  `json:"custom_sizes,omitempty"`

	RelativeTo RelativeTo `json:"relative_to,omitempty"`
}

// SpaceSize is one named size of a space scale, in both rem and px
// clamp forms. Labels follow the t-shirt ladder (… 2xs, xs, s, m, l,
// xl, 2xl …); derived pairs join two labels, e.g. "s-m".
type SpaceSize struct {
	Label   string  `json:"label"`
	MinSize float64 `json:"min_size"`
	MaxSize float64 `json:"max_size"`
	Clamp   string  `json:"clamp"`
	ClampPx string  `json:"clamp_px"`
}

// SpaceScale is a generated space scale. Sizes holds the base ladder,
// largest step first. OneUpPairs spans each size to its next-larger
// neighbour. CustomPairs holds the ranges requested via CustomSizes, in
// request order.
type SpaceScale struct {
	Sizes       []SpaceSize `json:"sizes"`
	OneUpPairs  []SpaceSize `json:"one_up_pairs"`
	CustomPairs []SpaceSize `json:"custom_pairs"`
}
