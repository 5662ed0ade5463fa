package params

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/fitreport/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Formats lists the output formats accepted by Write
var Formats = []string{domain.FormatTable, domain.FormatCSV, domain.FormatJSON, domain.FormatYAML}

// Write renders the table to w in the named format
func (t Table) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case domain.FormatTable:
		_, err := fmt.Fprintln(w, t.Render())
		return err
	case domain.FormatCSV:
		return t.WriteCSV(w)
	case domain.FormatJSON:
		return t.WriteJSON(w)
	case domain.FormatYAML:
		return t.WriteYAML(w)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", domain.ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}

// Render draws the table with a header row for terminal output
func (t Table) Render() string {
	caser := cases.Title(language.English)
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = caser.String(strings.ReplaceAll(c, "_", " "))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range t.Rows {
		tbl.Row(t.cells(row, MissingValue)...)
	}
	return tbl.Render()
}

// WriteCSV writes a header line followed by one record per row.
// Missing cells are left empty.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(t.cells(row, "")); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the rows as an indented array of records
func (t Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Records())
}

// WriteYAML writes the rows as a YAML sequence of mappings
func (t Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlValue(t.Records())); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// yamlValue rewrites json.Number values as plain int or float scalars
// carrying their source literal. Left alone, yaml.v3 quotes them as strings.
func yamlValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		tag := "!!float"
		if isIntegerLiteral(val) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(val)}
	case []Row:
		out := make([]any, len(val))
		for i, row := range val {
			out[i] = yamlValue(map[string]any(row))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlValue(item)
		}
		return out
	default:
		return v
	}
}

func (t Table) cells(row Row, missing string) []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		v, ok := row[c]
		if !ok || v == nil {
			out[i] = missing
			continue
		}
		out[i] = FormatValue(v)
	}
	return out
}

// Records returns the rows, or an empty slice so an empty table encodes as []
func (t Table) Records() []Row {
	if t.Rows == nil {
		return []Row{}
	}
	return t.Rows
}
