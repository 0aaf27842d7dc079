package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/ideaeval/internal/config"
	"github.com/mark3labs/ideaeval/internal/export"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/ideaeval/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var evaluateFlags struct {
	ideas  []string
	title  string
	export string
	format string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the evaluation wizard",
	Long: `Run the three-step evaluation wizard.

On Finish the results table is printed to stdout as markdown. Use --export
to also write it to a file (.yaml/.yml writes YAML).`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func addEvaluateFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&evaluateFlags.ideas, "idea", "i", nil, "Seed an idea name (repeatable)")
	cmd.Flags().StringVarP(&evaluateFlags.title, "title", "t", "", "Title used to name files saved from the results step")
	cmd.Flags().StringVarP(&evaluateFlags.export, "export", "o", "", "Write results to this file on finish")
	cmd.Flags().StringVarP(&evaluateFlags.format, "format", "f", "", "Format for files saved from the results step (md or yaml)")
}

func init() {
	addEvaluateFlags(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := wizardOptions(cfg)
	if _, err := export.ParseFormat(opts.ExportFormat); err != nil {
		return err
	}

	state, err := wizard.Run(opts)
	if errors.Is(err, wizard.ErrCancelled) {
		logger.Info("Evaluation cancelled")
		fmt.Fprintln(cmd.ErrOrStderr(), "Evaluation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	results := state.Results()
	fmt.Fprint(cmd.OutOrStdout(), export.Markdown(results))

	if evaluateFlags.export != "" {
		if err := export.WriteFile(evaluateFlags.export, results); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Results written to: %s\n", evaluateFlags.export)
	}

	printSetupHint(cmd.ErrOrStderr())

	return nil
}

// wizardOptions merges flags over loaded config.
func wizardOptions(cfg *config.Config) wizard.Options {
	opts := wizard.Options{
		Names:         evaluateFlags.ideas,
		Title:         evaluateFlags.title,
		ExportDir:     cfg.ExportDir,
		ExportFormat:  cfg.ExportFormat,
		MarkdownStyle: cfg.MarkdownStyle,
	}
	if evaluateFlags.format != "" {
		opts.ExportFormat = evaluateFlags.format
	}
	return opts
}
