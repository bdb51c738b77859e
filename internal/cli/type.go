package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss"
)

// NewTypeCommand creates the type command.
func NewTypeCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "type",
		Short: "Compute the fluid type scale from a scale definition",
		Long: `Compute the exponential fluid type scale configured in the definition's
type section. Each step is reported with its clamp() expression and, where
applicable, the viewport width at which it fails WCAG 1.4.4.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(rootOpts, configPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scale definition file (YAML)")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))

	return cmd
}

func runType(rootOpts *RootOptions, configPath string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := loadValidated(configPath)
	if err != nil {
		return err
	}
	if doc.Type == nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s has no type section", configPath))
	}

	steps := fluidcss.CalculateTypeScale(doc.TypeConfig())
	formatter.VerboseLog("computed %d type steps", len(steps))

	return formatter.SuccessText(renderTypeSteps(steps), steps)
}

func renderTypeSteps(steps []fluidcss.TypeStep) string {
	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "step %d: %s", s.Step, s.Clamp)
		if s.WCAGViolation != nil {
			fmt.Fprintf(&b, "  (fails WCAG 1.4.4 at %spx)",
				strconv.FormatFloat(*s.WCAGViolation, 'f', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
