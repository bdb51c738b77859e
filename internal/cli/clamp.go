package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss"
)

type clampOptions struct {
	minWidth   float64
	maxWidth   float64
	minSize    float64
	maxSize    float64
	usePx      bool
	relativeTo string
}

// NewClampCommand creates the clamp command.
func NewClampCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &clampOptions{}

	cmd := &cobra.Command{
		Use:   "clamp",
		Short: "Print a single CSS clamp() expression",
		Long: `Synthesize one clamp() expression interpolating a size between two
viewport breakpoints. Sizes and widths are given in pixels; output is in
rem unless --px is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClamp(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.minWidth, "min-width", 320, "viewport width of the narrow breakpoint (px)")
	cmd.Flags().Float64Var(&opts.maxWidth, "max-width", 1240, "viewport width of the wide breakpoint (px)")
	cmd.Flags().Float64Var(&opts.minSize, "min-size", 0, "size at the narrow breakpoint (px)")
	cmd.Flags().Float64Var(&opts.maxSize, "max-size", 0, "size at the wide breakpoint (px)")
	cmd.Flags().BoolVar(&opts.usePx, "px", false, "emit px bounds instead of rem")
	cmd.Flags().StringVar(&opts.relativeTo, "relative-to", "viewport", "relative unit basis (viewport|viewport-width|container)")
	cobra.CheckErr(cmd.MarkFlagRequired("min-size"))
	cobra.CheckErr(cmd.MarkFlagRequired("max-size"))

	return cmd
}

func runClamp(rootOpts *RootOptions, opts *clampOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	relativeTo, err := parseRelativeTo(opts.relativeTo)
	if err != nil {
		return err
	}
	if opts.minWidth >= opts.maxWidth {
		return NewExitError(ExitCommandError, fmt.Sprintf("min-width (%v) must be less than max-width (%v)", opts.minWidth, opts.maxWidth))
	}

	result := fluidcss.CalculateClamp(fluidcss.ClampConfig{
		MinWidth:   opts.minWidth,
		MaxWidth:   opts.maxWidth,
		MinSize:    opts.minSize,
		MaxSize:    opts.maxSize,
		UsePx:      opts.usePx,
		RelativeTo: relativeTo,
	})

	return formatter.Success(result)
}

// parseRelativeTo validates the --relative-to flag value.
func parseRelativeTo(value string) (fluidcss.RelativeTo, error) {
	r := fluidcss.RelativeTo(value)
	if !fluidcss.ValidRelativeTo[r] {
		return "", NewExitError(ExitCommandError, fmt.Sprintf("invalid relative-to %q: must be viewport, viewport-width, or container", value))
	}
	return r, nil
}
