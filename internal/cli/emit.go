package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/fluidcss"
	"github.com/roach88/fluidcss/internal/config"
	"github.com/roach88/fluidcss/internal/emit"
	"github.com/roach88/fluidcss/internal/store"
)

type emitOptions struct {
	configPath string
	outPath    string
	storePath  string
}

// NewEmitCommand creates the emit command.
func NewEmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit a stylesheet for every scale in a definition",
		Long: `Compute all scales in the definition and render them as :root custom
properties. Output goes to stdout unless --out is given. With --store,
the run is recorded in a SQLite history database together with the
definition and its canonical hash.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "scale definition file (YAML)")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "write the stylesheet to this file instead of stdout")
	cmd.Flags().StringVar(&opts.storePath, "store", "", "record the run in this history database")
	cobra.CheckErr(cmd.MarkFlagRequired("config"))

	return cmd
}

func runEmit(rootOpts *RootOptions, opts *emitOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	doc, err := loadValidated(opts.configPath)
	if err != nil {
		return err
	}

	emitDoc := buildEmitDoc(doc)
	css := emit.CSS(emitDoc)

	runID := ""
	if opts.storePath != "" {
		runID, err = recordRun(cmd.Context(), opts, doc, css)
		if err != nil {
			return err
		}
		formatter.VerboseLog("recorded run %s in %s", runID, opts.storePath)
	}

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(css), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "writing stylesheet", err)
		}
		formatter.VerboseLog("wrote %d bytes to %s", len(css), opts.outPath)
		return formatter.SuccessText("", emitResult{Out: opts.outPath, RunID: runID})
	}

	return formatter.SuccessText(css, emitResult{CSS: css, RunID: runID})
}

type emitResult struct {
	CSS   string `json:"css,omitempty"`
	Out   string `json:"out,omitempty"`
	RunID string `json:"run_id,omitempty"`
}

// buildEmitDoc computes every section present in the definition.
func buildEmitDoc(doc *config.Document) emit.Doc {
	out := emit.Doc{Prefix: doc.Prefix}
	if doc.Type != nil {
		out.TypeSteps = fluidcss.CalculateTypeScale(doc.TypeConfig())
	}
	if doc.Space != nil {
		scale := fluidcss.CalculateSpaceScale(doc.SpaceConfig())
		out.Space = &scale
	}
	if doc.Clamps != nil {
		out.Clamps = fluidcss.CalculateClamps(doc.ClampsConfig())
	}
	return out
}

func recordRun(ctx context.Context, opts *emitOptions, doc *config.Document, css string) (string, error) {
	hash, err := config.Hash(doc)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "hashing scale definition", err)
	}
	raw, err := os.ReadFile(opts.configPath)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "re-reading scale definition", err)
	}

	s, err := store.Open(opts.storePath)
	if err != nil {
		return "", WrapExitError(ExitCommandError, fmt.Sprintf("opening history database %s", opts.storePath), err)
	}
	defer s.Close()

	run := store.Run{
		ID:         store.NewRunID(),
		ConfigHash: hash,
		ConfigYAML: string(raw),
		CSS:        css,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.WriteRun(ctx, run); err != nil {
		return "", WrapExitError(ExitCommandError, "recording run", err)
	}
	return run.ID, nil
}
