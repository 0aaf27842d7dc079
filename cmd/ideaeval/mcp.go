package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/ideaeval/internal/export"
	"github.com/mark3labs/ideaeval/internal/mcpserver"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	ideas []string
	title string
	http  string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the evaluation wizard as MCP tools",
	Long: `Serve the evaluation wizard as MCP tools.

By default the tools are served over stdio. Use --http to serve them as a
streamable HTTP endpoint instead (e.g. --http 127.0.0.1:8765).`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringArrayVarP(&mcpFlags.ideas, "idea", "i", nil, "Seed an idea name (repeatable)")
	mcpCmd.Flags().StringVarP(&mcpFlags.title, "title", "t", "", "Title used to name exported files")
	mcpCmd.Flags().StringVar(&mcpFlags.http, "http", "", "Serve over HTTP on this address instead of stdio")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := export.ParseFormat(cfg.ExportFormat); err != nil {
		return err
	}

	srv := mcpserver.New(mcpserver.Options{
		Names:        mcpFlags.ideas,
		Title:        mcpFlags.title,
		ExportDir:    cfg.ExportDir,
		ExportFormat: cfg.ExportFormat,
		Version:      version,
	})

	if mcpFlags.http == "" {
		return srv.ServeStdio()
	}

	if _, err := srv.Start(cmd.Context(), mcpFlags.http); err != nil {
		return err
	}
	defer func() { _ = srv.Stop() }()

	fmt.Fprintf(cmd.ErrOrStderr(), "MCP tools available at %s\n", srv.URL())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-cmd.Context().Done():
	}
	return nil
}
