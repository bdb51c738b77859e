// Package emit renders computed fluid scales into stylesheet and
// design-token artifacts. The computation layer returns formula strings;
// this package decides what files built from them look like.
package emit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/fluidcss"
)

// Doc bundles everything one generation run produced. Any section may
// be empty; emitted output contains only what is present.
type Doc struct {
	// Prefix is prepended to every custom property name, e.g. prefix
	// "fl" yields --fl-step-0. Empty means no prefix.
	Prefix string `json:"prefix,omitempty"`

	TypeSteps []fluidcss.TypeStep    `json:"type_steps,omitempty"`
	Space     *fluidcss.SpaceScale   `json:"space,omitempty"`
	Clamps    []fluidcss.ClampResult `json:"clamps,omitempty"`
}

// CSS renders the document as :root custom-property declarations.
// Type steps become --step-N (negative steps keep their sign, giving
// the conventional --step--1 names), space sizes and pairs become
// --space-{label}, and standalone clamp pairs become --fluid-{label}.
func CSS(d Doc) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	for _, s := range d.TypeSteps {
		writeDecl(&b, d.varName("step", strconv.Itoa(s.Step)), s.Clamp)
	}

	if d.Space != nil {
		for _, group := range [][]fluidcss.SpaceSize{d.Space.Sizes, d.Space.OneUpPairs, d.Space.CustomPairs} {
			for _, s := range group {
				writeDecl(&b, d.varName("space", s.Label), s.Clamp)
			}
		}
	}

	for _, c := range d.Clamps {
		writeDecl(&b, d.varName("fluid", c.Label), c.Clamp)
	}

	b.WriteString("}\n")
	return b.String()
}

// JSON renders the document as an indented design-token payload using
// the computation layer's snake_case field names.
func JSON(d Doc) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tokens: %w", err)
	}
	return append(out, '\n'), nil
}

func writeDecl(b *strings.Builder, name, value string) {
	b.WriteString("  ")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}

func (d Doc) varName(group, name string) string {
	if d.Prefix != "" {
		return "--" + d.Prefix + "-" + group + "-" + name
	}
	return "--" + group + "-" + name
}
