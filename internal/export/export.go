// Package export renders evaluation results as Markdown or YAML and writes
// them to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/logger"
	"gopkg.in/yaml.v3"
)

// Format selects the export encoding.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatYAML     Format = "yaml"
)

// DefaultTitle names exports when no title is given.
const DefaultTitle = "idea-evaluation"

// unnamedIdea is shown for ideas whose name was left blank.
const unnamedIdea = "(unnamed)"

// ParseFormat accepts "md", "markdown", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format: %q (use md or yaml)", s)
	}
}

// Ext returns the file extension, including the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".md"
}

// Markdown renders results as a GitHub-flavoured table with one column per
// criterion and a trailing Total Score column.
func Markdown(results []evaluation.Result) string {
	var b strings.Builder

	header := append([]string{"Idea"}, evaluation.CriterionNames()...)
	header = append(header, "Total Score")
	writeRow(&b, header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
		if i > 0 {
			sep[i] = "---:"
		}
	}
	writeRow(&b, sep)

	for _, r := range results {
		row := make([]string, 0, len(header))
		row = append(row, cellName(r.Name))
		for _, c := range evaluation.Criteria {
			row = append(row, strconv.Itoa(r.Score(c)))
		}
		row = append(row, "**"+strconv.Itoa(r.Total)+"**")
		writeRow(&b, row)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// cellName escapes a name for use inside a table cell.
func cellName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return unnamedIdea
	}
	name = strings.ReplaceAll(name, "\n", " ")
	return strings.ReplaceAll(name, "|", "\\|")
}

// resultDoc is the YAML shape of a single result row.
type resultDoc struct {
	Name   string         `yaml:"name"`
	Scores map[string]int `yaml:"scores"`
	Total  int            `yaml:"total"`
}

// YAML encodes results as a list of {name, scores, total} documents. Unset
// criteria are written as 0 so every row carries all five keys.
func YAML(results []evaluation.Result) ([]byte, error) {
	docs := make([]resultDoc, 0, len(results))
	for _, r := range results {
		scores := make(map[string]int, len(evaluation.Criteria))
		for _, c := range evaluation.Criteria {
			scores[c.String()] = r.Score(c)
		}
		docs = append(docs, resultDoc{Name: r.Name, Scores: scores, Total: r.Total})
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshaling results: %w", err)
	}
	return data, nil
}

// Encode renders results in the given format.
func Encode(format Format, results []evaluation.Result) ([]byte, error) {
	switch format {
	case FormatYAML:
		return YAML(results)
	case FormatMarkdown:
		return []byte(Markdown(results)), nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// Filename derives the export filename from a title.
func Filename(title string, format Format) string {
	name := slug.Make(title)
	if name == "" {
		name = DefaultTitle
	}
	return name + format.Ext()
}

// Write encodes results and writes them into dir, creating it if needed.
// Returns the path of the written file.
func Write(dir, title string, format Format, results []evaluation.Result) (string, error) {
	data, err := Encode(format, results)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(title, format))
	logger.Debug("Writing %d results to %s", len(results), path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}

	return path, nil
}

// WriteFile encodes results and writes them to an explicit path. The format
// is taken from the extension when it is .yaml or .yml.
func WriteFile(path string, results []evaluation.Result) error {
	format := FormatMarkdown
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = FormatYAML
	}

	data, err := Encode(format, results)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	logger.Debug("Exported results to %s", path)
	return nil
}
