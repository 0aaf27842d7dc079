package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/ideaeval/internal/config"
	"github.com/mark3labs/ideaeval/internal/export"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project   bool
	force     bool
	exportDir string
	format    string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create ideaeval configuration file",
	Long: `Create an ideaeval configuration file.

By default, creates a global config at ~/.config/ideaeval/ideaeval.yml.
Use --project to create ./ideaeval.yml instead; it takes precedence over
the global file. --export-dir and --format override the written defaults.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&setupFlags.exportDir, "export-dir", "", "Directory results are saved to")
	setupCmd.Flags().StringVar(&setupFlags.format, "format", "", "Export format written to the config (md or yaml)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()
	if setupFlags.exportDir != "" {
		cfg.ExportDir = setupFlags.exportDir
	}
	if setupFlags.format != "" {
		format, err := export.ParseFormat(setupFlags.format)
		if err != nil {
			return err
		}
		cfg.ExportFormat = string(format)
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	printConfig(out, cfg)
	fmt.Fprintln(out, "\nRun 'ideaeval' to start an evaluation.")

	return nil
}

// printConfig lists the written values, one key per line.
func printConfig(w io.Writer, cfg *config.Config) {
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}
	rows := [][2]string{
		{"log_level", cfg.LogLevel},
		{"log_file", logFile},
		{"export_dir", cfg.ExportDir},
		{"export_format", cfg.ExportFormat},
		{"markdown_style", cfg.MarkdownStyle},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-15s %s\n", row[0], row[1])
	}
}

// printSetupHint points first-time users at the setup command.
func printSetupHint(w io.Writer) {
	if config.Exists() {
		return
	}
	fmt.Fprintln(w, "Tip: run 'ideaeval setup' to save your export directory and format.")
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
