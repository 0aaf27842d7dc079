package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/export"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// indexArg extracts a zero-based idea index. JSON numbers arrive as float64.
func indexArg(args map[string]any) (int, error) {
	raw, ok := args["index"]
	if !ok {
		return 0, fmt.Errorf("missing 'index' parameter")
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("'index' must be a whole number")
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("'index' must be a number")
		}
		return n, nil
	default:
		return 0, fmt.Errorf("'index' must be a number")
	}
}

// scoreArg returns the raw score text. Numbers are accepted as well as strings.
func scoreArg(args map[string]any) (string, error) {
	switch v := args["score"].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("missing 'score' parameter")
	default:
		return "", fmt.Errorf("'score' must be a string or number")
	}
}

func noIdea(index int) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("no idea at index %d", index))
}

// stepLine reports the wizard's position, e.g. "Step 2 of 3: Rate Each Idea".
func stepLine(s evaluation.State) string {
	return fmt.Sprintf("Step %d of %d: %s", int(s.Step), evaluation.StepCount, s.Step)
}

// describe renders the step and every idea's ratings as plain text.
func describe(s evaluation.State) string {
	var b strings.Builder
	b.WriteString(stepLine(s))
	b.WriteString("\n")
	for idx, idea := range s.Ideas {
		name := idea.Name
		if strings.TrimSpace(name) == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(&b, "%d. %s", idx, name)
		parts := make([]string, 0, len(evaluation.Criteria))
		for _, c := range evaluation.Criteria {
			score := "-"
			if v := idea.Score(c); v.Valid() {
				score = strconv.Itoa(int(v))
			}
			parts = append(parts, c.String()+"="+score)
		}
		fmt.Fprintf(&b, " [%s] total=%d\n", strings.Join(parts, " "), idea.Total())
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *Server) handleListIdeas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(describe(s.ctrl.State())), nil
}

func (s *Server) handleAddIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := request.GetArguments()["name"].(string)

	state := s.ctrl.Apply(func(st evaluation.State) evaluation.State {
		st = st.AddIdea()
		return st.SetIdeaName(len(st.Ideas)-1, name)
	})

	index := len(state.Ideas) - 1
	logger.Debug("MCP add-idea: index %d", index)
	return mcp.NewToolResultText(fmt.Sprintf("Added idea at index %d", index)), nil
}

func (s *Server) handleRenameIdea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	index, err := indexArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("missing or invalid 'name' parameter"), nil
	}

	var found bool
	s.ctrl.Apply(func(st evaluation.State) evaluation.State {
		found = st.HasIdea(index)
		return st.SetIdeaName(index, name)
	})
	if !found {
		return noIdea(index), nil
	}

	logger.Debug("MCP rename-idea: index %d", index)
	return mcp.NewToolResultText(fmt.Sprintf("Renamed idea %d to %q", index, name)), nil
}

func (s *Server) handleSetScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	index, err := indexArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	critName, _ := args["criterion"].(string)
	crit, ok := evaluation.ParseCriterion(critName)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown criterion %q (use one of: %s)",
			critName, strings.Join(evaluation.CriterionNames(), ", "))), nil
	}
	raw, err := scoreArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var found bool
	state := s.ctrl.Apply(func(st evaluation.State) evaluation.State {
		found = st.HasIdea(index)
		return st.SetScore(index, crit, raw)
	})
	if !found {
		return noIdea(index), nil
	}

	score := state.Ideas[index].Score(crit)
	logger.Debug("MCP set-score: idea %d %s=%d", index, crit, score)
	if !score.Valid() {
		return mcp.NewToolResultText(fmt.Sprintf("Cleared %s for idea %d (total %d)", crit, index, state.Ideas[index].Total())), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Set %s=%d for idea %d (total %d)", crit, score, index, state.Ideas[index].Total())), nil
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var moved bool
	state := s.ctrl.Apply(func(st evaluation.State) evaluation.State {
		moved = st.CanAdvance()
		return st.Advance()
	})
	if !moved {
		return mcp.NewToolResultText(fmt.Sprintf("Already on the last step: %s", state.Step)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Now on step %d: %s", int(state.Step), state.Step)), nil
}

func (s *Server) handleRetreat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var moved bool
	state := s.ctrl.Apply(func(st evaluation.State) evaluation.State {
		moved = st.CanRetreat()
		return st.Retreat()
	})
	if !moved {
		return mcp.NewToolResultText(fmt.Sprintf("Already on the first step: %s", state.Step)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Now on step %d: %s", int(state.Step), state.Step)), nil
}

func (s *Server) handleResults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := s.ctrl.State()
	return mcp.NewToolResultText(stepLine(state) + "\n\n" + export.Markdown(state.Results())), nil
}

func (s *Server) handleExportResults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formatName, _ := request.GetArguments()["format"].(string)
	if formatName == "" {
		formatName = s.opts.ExportFormat
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, err := export.Write(s.opts.ExportDir, s.opts.Title, format, s.ctrl.State().Results())
	if err != nil {
		logger.Error("MCP export-results failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	logger.Info("Exported results to %s", path)
	return mcp.NewToolResultText("Saved to " + path), nil
}
