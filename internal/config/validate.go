package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is one schema violation in a scale definition.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Validate unifies doc with the embedded schema and returns every
// violation found. A nil result means the document is valid.
func Validate(doc *Document) []ValidationError {
	if doc.Type == nil && doc.Space == nil && doc.Clamps == nil {
		return []ValidationError{{Message: "scale definition needs at least one of: type, space, clamps"}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []ValidationError{{Field: "schema", Message: err.Error()}}
	}

	def := schema.LookupPath(cue.ParsePath("#Document"))
	if err := def.Err(); err != nil {
		return []ValidationError{{Field: "schema", Message: err.Error()}}
	}

	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("encoding definition: %v", err)}}
	}

	err := def.Unify(val).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var violations []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		violations = append(violations, ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return violations
}
