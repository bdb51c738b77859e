package cli

import (
	"strings"

	"github.com/roach88/fluidcss/internal/config"
)

// loadValidated loads a scale definition and runs schema validation,
// mapping failures onto exit codes.
func loadValidated(path string) (*config.Document, error) {
	doc, err := config.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading scale definition", err)
	}
	if violations := config.Validate(doc); len(violations) > 0 {
		messages := make([]string, len(violations))
		for i, v := range violations {
			messages[i] = v.Error()
		}
		return nil, NewExitError(ExitFailure, "invalid scale definition: "+strings.Join(messages, "; "))
	}
	return doc, nil
}
