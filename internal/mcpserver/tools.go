package mcpserver

import (
	"strings"

	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list-ideas",
			mcp.WithDescription("List the ideas with their current scores and the wizard step"),
		),
		s.handleListIdeas,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("add-idea",
			mcp.WithDescription("Append a new idea with no scores"),
			mcp.WithString("name", mcp.Description("Optional name for the new idea")),
		),
		s.handleAddIdea,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("rename-idea",
			mcp.WithDescription("Set the name of an existing idea"),
			mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based idea index")),
			mcp.WithString("name", mcp.Required(), mcp.Description("New name")),
		),
		s.handleRenameIdea,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set-score",
			mcp.WithDescription("Rate an idea on one criterion from 1 to 5. Any other value clears the rating"),
			mcp.WithNumber("index", mcp.Required(), mcp.Description("Zero-based idea index")),
			mcp.WithString("criterion", mcp.Required(),
				mcp.Description("One of: "+strings.Join(evaluation.CriterionNames(), ", ")),
			),
			mcp.WithString("score", mcp.Required(), mcp.Description("Rating 1-5, or empty to clear")),
		),
		s.handleSetScore,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("advance",
			mcp.WithDescription("Move the wizard to the next step"),
		),
		s.handleAdvance,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("retreat",
			mcp.WithDescription("Move the wizard to the previous step"),
		),
		s.handleRetreat,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("results",
			mcp.WithDescription("Return the results table as markdown"),
		),
		s.handleResults,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("export-results",
			mcp.WithDescription("Write the results table to the export directory"),
			mcp.WithString("format", mcp.Description("md or yaml (defaults to the configured format)")),
		),
		s.handleExportResults,
	)
}
