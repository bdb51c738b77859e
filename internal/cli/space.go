package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss"
)

// NewSpaceCommand creates the space command.
func NewSpaceCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "space",
		Short: "Compute the fluid space scale from a scale definition",
		Long: `Compute the multiplier-based fluid space scale configured in the
definition's space section: the labelled size ladder, the derived one-up
pairs, and any requested custom pairs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpace(rootOpts, configPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scale definition file (YAML)")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))

	return cmd
}

func runSpace(rootOpts *RootOptions, configPath string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := loadValidated(configPath)
	if err != nil {
		return err
	}
	if doc.Space == nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s has no space section", configPath))
	}

	spaceConfig := doc.SpaceConfig()
	scale := fluidcss.CalculateSpaceScale(spaceConfig)
	logDroppedCustomSizes(formatter, spaceConfig.CustomSizes, scale.CustomPairs)

	return formatter.SuccessText(renderSpaceScale(scale), scale)
}

func renderSpaceScale(scale fluidcss.SpaceScale) string {
	var b strings.Builder

	b.WriteString("sizes:\n")
	writeSpaceSizes(&b, scale.Sizes)

	if len(scale.OneUpPairs) > 0 {
		b.WriteString("one-up pairs:\n")
		writeSpaceSizes(&b, scale.OneUpPairs)
	}
	if len(scale.CustomPairs) > 0 {
		b.WriteString("custom pairs:\n")
		writeSpaceSizes(&b, scale.CustomPairs)
	}
	return b.String()
}

func writeSpaceSizes(b *strings.Builder, sizes []fluidcss.SpaceSize) {
	for _, s := range sizes {
		fmt.Fprintf(b, "  %s: %s\n", s.Label, s.Clamp)
	}
}

// logDroppedCustomSizes surfaces silently dropped custom pair requests
// in verbose mode. The scale itself stays lenient; this is the only
// place a typo in custom_sizes becomes visible.
func logDroppedCustomSizes(formatter *OutputFormatter, requested []string, produced []fluidcss.SpaceSize) {
	if len(produced) == len(requested) {
		return
	}
	got := make(map[string]bool, len(produced))
	for _, p := range produced {
		got[p.Label] = true
	}
	for _, name := range requested {
		if !got[name] {
			formatter.VerboseLog("custom size %q did not resolve; dropped", name)
		}
	}
}
