package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/ideaeval/internal/config"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▀ █▀▄ █▀▀ ▄▀█ █▀▀ █ █ ▄▀█ █"
	logoText2 = "█ █▄▀ ██▄ █▀█ ██▄ ▀▄▀ █▀█ █▄▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ideaeval",
	Short: "Score ideas against five criteria in a three-step terminal wizard",
	Args:  cobra.NoArgs,
	RunE:  runEvaluate,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// loadConfig loads configuration and points the logger at it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.Long = renderLogo() + `

ideaeval walks you through a short evaluation: name your ideas, rate each
one from 1 to 5 on Feasibility, Cost, Impact, Alignment and Timeframe, then
compare the totals in a results table.

The same wizard is available to AI agents as MCP tools via 'ideaeval mcp'.`

	addEvaluateFlags(rootCmd)

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(criteriaCmd)
}
