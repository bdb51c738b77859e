// Package config loads and validates fluidcss scale definitions.
//
// A scale definition is a single YAML document with up to three
// sections — type, space, and clamps — plus document-wide options:
//
//	relative_to: viewport
//	type:
//	  min_width: 320
//	  max_width: 1240
//	  min_font_size: 18
//	  max_font_size: 20
//	  min_type_scale: 1.2
//	  max_type_scale: 1.25
//	  positive_steps: 5
//	  negative_steps: 2
//	space:
//	  min_width: 320
//	  max_width: 1240
//	  min_size: 16
//	  max_size: 24
//	  positive_steps: [1.5, 2, 3]
//	  negative_steps: [0.75, 0.5]
//	  custom_sizes: ["s-l"]
//	clamps:
//	  min_width: 320
//	  max_width: 1240
//	  pairs: [[16, 24], [16, 48]]
//
// Loading is strict: unknown YAML fields are rejected. Structural and
// range constraints (breakpoint ordering, positive sizes, pair shape)
// are enforced by unifying the decoded document with an embedded CUE
// schema; the computation layer itself performs no validation, so
// everything fail-fast lives here.
//
// Hash computes a canonical SHA-256 identity for a document, used by the
// run history store to detect configuration drift between generations.
package config
