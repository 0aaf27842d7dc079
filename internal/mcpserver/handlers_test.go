package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractText extracts text from CallToolResult.Content[0]
func extractText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestHandleSetScore(t *testing.T) {
	srv := New(Options{Names: []string{"Solar"}})

	for i, raw := range []any{"5", 3.0, "4", "2", "1"} {
		result := call(t, srv.handleSetScore, map[string]any{
			"index":     0.0,
			"criterion": evaluation.Criteria[i].String(),
			"score":     raw,
		})
		require.False(t, result.IsError, extractText(result))
	}

	state := srv.Controller().State()
	assert.Equal(t, 15, state.Ideas[0].Total())

	// Out-of-range ratings clear the criterion
	result := call(t, srv.handleSetScore, map[string]any{"index": 0.0, "criterion": "cost", "score": "9"})
	require.False(t, result.IsError)
	assert.Contains(t, extractText(result), "Cleared Cost")
	assert.Equal(t, 12, srv.Controller().State().Ideas[0].Total())
}

func TestHandleSetScore_BadArguments(t *testing.T) {
	srv := New(Options{})

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing index", map[string]any{"criterion": "cost", "score": "3"}, "missing 'index'"},
		{"fractional index", map[string]any{"index": 0.5, "criterion": "cost", "score": "3"}, "whole number"},
		{"unknown criterion", map[string]any{"index": 0.0, "criterion": "vibes", "score": "3"}, "unknown criterion"},
		{"missing score", map[string]any{"index": 0.0, "criterion": "cost"}, "missing 'score'"},
		{"no idea", map[string]any{"index": 4.0, "criterion": "cost", "score": "3"}, "no idea at index 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, srv.handleSetScore, tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, extractText(result), tt.want)
		})
	}

	assert.Equal(t, 0, srv.Controller().State().Ideas[0].Total())
}

func TestHandleAddAndRename(t *testing.T) {
	srv := New(Options{})

	result := call(t, srv.handleAddIdea, map[string]any{"name": "Wind"})
	assert.Equal(t, "Added idea at index 1", extractText(result))

	result = call(t, srv.handleRenameIdea, map[string]any{"index": 0.0, "name": "Solar"})
	require.False(t, result.IsError)

	result = call(t, srv.handleRenameIdea, map[string]any{"index": -1.0, "name": "x"})
	assert.True(t, result.IsError)
	assert.Contains(t, extractText(result), "no idea at index -1")

	state := srv.Controller().State()
	require.Len(t, state.Ideas, 2)
	assert.Equal(t, "Solar", state.Ideas[0].Name)
	assert.Equal(t, "Wind", state.Ideas[1].Name)

	list := extractText(call(t, srv.handleListIdeas, nil))
	assert.Contains(t, list, "Step 1 of 3: Enter Your Ideas")
	assert.Contains(t, list, "0. Solar")
	assert.Contains(t, list, "1. Wind [Feasibility=- ")
}

func TestHandleAdvanceRetreat(t *testing.T) {
	srv := New(Options{})

	assert.Contains(t, extractText(call(t, srv.handleRetreat, nil)), "Already on the first step")
	assert.Equal(t, "Now on step 2: Rate Each Idea", extractText(call(t, srv.handleAdvance, nil)))
	assert.Equal(t, "Now on step 3: Evaluation Results", extractText(call(t, srv.handleAdvance, nil)))
	assert.Contains(t, extractText(call(t, srv.handleAdvance, nil)), "Already on the last step")
	assert.Equal(t, evaluation.StepResults, srv.Controller().State().Step)
	assert.Equal(t, "Now on step 2: Rate Each Idea", extractText(call(t, srv.handleRetreat, nil)))
}

func TestHandleResults(t *testing.T) {
	srv := New(Options{Names: []string{"A", "B"}})
	call(t, srv.handleSetScore, map[string]any{"index": 1.0, "criterion": "Impact", "score": "4"})

	text := extractText(call(t, srv.handleResults, nil))
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Step 1 of 3: Enter Your Ideas", lines[0])
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], "Total Score")
	assert.Contains(t, lines[4], "| A |")
	assert.Contains(t, lines[5], "**4**")

	call(t, srv.handleAdvance, nil)
	text = extractText(call(t, srv.handleResults, nil))
	assert.True(t, strings.HasPrefix(text, "Step 2 of 3: Rate Each Idea\n"))
}

func TestHandleExportResults(t *testing.T) {
	dir := t.TempDir()
	srv := New(Options{Names: []string{"A"}, Title: "Q3 Review", ExportDir: dir, ExportFormat: "md"})

	result := call(t, srv.handleExportResults, nil)
	require.False(t, result.IsError, extractText(result))
	path := filepath.Join(dir, "q3-review.md")
	assert.Equal(t, "Saved to "+path, extractText(result))
	_, err := os.Stat(path)
	require.NoError(t, err)

	result = call(t, srv.handleExportResults, map[string]any{"format": "yaml"})
	require.False(t, result.IsError)
	_, err = os.Stat(filepath.Join(dir, "q3-review.yaml"))
	require.NoError(t, err)

	result = call(t, srv.handleExportResults, map[string]any{"format": "pdf"})
	assert.True(t, result.IsError)
}
