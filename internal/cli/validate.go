package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss/internal/config"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Errors []config.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definition>",
		Short: "Validate a scale definition without emitting anything",
		Long: `Check a YAML scale definition against the schema: breakpoint ordering,
positive sizes, step shapes, and custom pair syntax. Nothing is computed
or written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := config.Load(path)
	if err != nil {
		if ferr := formatter.Error("E001", err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "loading scale definition", err)
	}

	violations := config.Validate(doc)
	if len(violations) > 0 {
		if ferr := formatter.Error("E002", "scale definition failed validation", violations); ferr != nil {
			return ferr
		}
		if rootOpts.Format != "json" {
			for _, v := range violations {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", v.Error())
			}
		}
		return NewExitError(ExitFailure, "scale definition failed validation")
	}

	if rootOpts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	return formatter.Success("✓ scale definition valid")
}
