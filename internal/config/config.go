package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fluidcss"
)

// Document is a decoded scale definition. All sections are optional,
// but a document with none of them is rejected by validation.
type Document struct {
	// RelativeTo selects the relative unit for every generated clamp:
	// "viewport" (vi, the default), "viewport-width" (vw), or
	// "container" (cqi).
	RelativeTo string `yaml:"relative_to,omitempty" json:"relative_to,omitempty"`

	// Prefix overrides the custom-property prefix used when emitting
	// CSS, e.g. prefix "fl" yields --fl-step-0.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	Type   *TypeSection   `yaml:"type,omitempty" json:"type,omitempty"`
	Space  *SpaceSection  `yaml:"space,omitempty" json:"space,omitempty"`
	Clamps *ClampsSection `yaml:"clamps,omitempty" json:"clamps,omitempty"`
}

// TypeSection configures the fluid type scale.
type TypeSection struct {
	MinWidth      float64 `yaml:"min_width" json:"min_width"`
	MaxWidth      float64 `yaml:"max_width" json:"max_width"`
	MinFontSize   float64 `yaml:"min_font_size" json:"min_font_size"`
	MaxFontSize   float64 `yaml:"max_font_size" json:"max_font_size"`
	MinTypeScale  float64 `yaml:"min_type_scale" json:"min_type_scale"`
	MaxTypeScale  float64 `yaml:"max_type_scale" json:"max_type_scale"`
	PositiveSteps int     `yaml:"positive_steps,omitempty" json:"positive_steps,omitempty"`
	NegativeSteps int     `yaml:"negative_steps,omitempty" json:"negative_steps,omitempty"`
}

// SpaceSection configures the fluid space scale.
type SpaceSection struct {
	MinWidth      float64   `yaml:"min_width" json:"min_width"`
	MaxWidth      float64   `yaml:"max_width" json:"max_width"`
	MinSize       float64   `yaml:"min_size" json:"min_size"`
	MaxSize       float64   `yaml:"max_size" json:"max_size"`
	PositiveSteps []float64 `yaml:"positive_steps,omitempty" json:"positive_steps,omitempty"`
	NegativeSteps []float64 `yaml:"negative_steps,omitempty" json:"negative_steps,omitempty"`
	CustomSizes   []string  `yaml:"custom_sizes,omitempty" json:"custom_sizes,omitempty"`
}

// ClampsSection configures standalone clamp pairs. Pairs decode as
// two-element lists; the schema rejects any other arity before the
// values reach the computation layer.
type ClampsSection struct {
	MinWidth float64     `yaml:"min_width" json:"min_width"`
	MaxWidth float64     `yaml:"max_width" json:"max_width"`
	Pairs    [][]float64 `yaml:"pairs" json:"pairs"`
}

// Load reads and decodes a scale definition from path. Decoding is
// strict (unknown fields error); schema validation is a separate step
// via Validate so callers can report all violations at once.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scale definition: %w", err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// TypeConfig converts the type section into a computation config,
// applying the document-wide relative unit.
func (d *Document) TypeConfig() fluidcss.TypeScaleConfig {
	t := d.Type
	return fluidcss.TypeScaleConfig{
		MinWidth:      t.MinWidth,
		MaxWidth:      t.MaxWidth,
		MinFontSize:   t.MinFontSize,
		MaxFontSize:   t.MaxFontSize,
		MinTypeScale:  t.MinTypeScale,
		MaxTypeScale:  t.MaxTypeScale,
		PositiveSteps: t.PositiveSteps,
		NegativeSteps: t.NegativeSteps,
		RelativeTo:    fluidcss.RelativeTo(d.RelativeTo),
	}
}

// SpaceConfig converts the space section into a computation config.
func (d *Document) SpaceConfig() fluidcss.SpaceScaleConfig {
	s := d.Space
	return fluidcss.SpaceScaleConfig{
		MinWidth:      s.MinWidth,
		MaxWidth:      s.MaxWidth,
		MinSize:       s.MinSize,
		MaxSize:       s.MaxSize,
		PositiveSteps: s.PositiveSteps,
		NegativeSteps: s.NegativeSteps,
		CustomSizes:   s.CustomSizes,
		RelativeTo:    fluidcss.RelativeTo(d.RelativeTo),
	}
}

// ClampsConfig converts the clamps section into a computation config.
// Pair arity is already schema-checked, but short pairs are skipped
// here as well so an unvalidated document cannot panic the conversion.
func (d *Document) ClampsConfig() fluidcss.ClampsConfig {
	c := d.Clamps
	pairs := make([][2]float64, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		if len(p) != 2 {
			continue
		}
		pairs = append(pairs, [2]float64{p[0], p[1]})
	}
	return fluidcss.ClampsConfig{
		MinWidth:   c.MinWidth,
		MaxWidth:   c.MaxWidth,
		Pairs:      pairs,
		RelativeTo: fluidcss.RelativeTo(d.RelativeTo),
	}
}
