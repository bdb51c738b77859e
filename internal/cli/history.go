package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss/internal/store"
)

type historyOptions struct {
	storePath string
	limit     int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Long: `List runs recorded by emit --store, newest first. Each line shows the
run id, when it ran, and the canonical hash of the definition it used,
so configuration drift between generations is visible at a glance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.storePath, "store", "", "history database recorded by emit --store")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "maximum runs to list (0 for all)")
	cobra.CheckErr(cmd.MarkFlagRequired("store"))

	return cmd
}

func runHistory(rootOpts *RootOptions, opts *historyOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	s, err := store.Open(opts.storePath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening history database %s", opts.storePath), err)
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), opts.limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing runs", err)
	}

	return formatter.SuccessText(renderRuns(runs), runs)
}

func renderRuns(runs []store.Run) string {
	if len(runs) == 0 {
		return "no runs recorded\n"
	}

	var b strings.Builder
	for _, run := range runs {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			run.ID,
			run.CreatedAt.UTC().Format(time.RFC3339),
			shortHash(run.ConfigHash))
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
