// Package params projects the fitted parameters of a results document into
// a row-oriented table for reporting.
package params

import (
	"fmt"
	"slices"
	"sort"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/metrics"
	"github.com/osse101/fitreport/internal/results"
)

// Row is one fitted parameter keyed by column name
type Row map[string]any

// Table is a row-oriented view of optimization_results.parameters.
// Columns is the union of keys across all rows. A row that lacks a column
// has no entry for it and reads back as nil.
type Table struct {
	Columns []string
	Rows    []Row
}

// FromDocument builds the parameter table of doc. Missing keys surface as
// domain.ErrMissingField; a parameters value that is not an array of objects
// surfaces as domain.ErrUnexpectedType. Values are copied as decoded.
func FromDocument(doc results.Document) (Table, error) {
	raw, err := doc.Lookup(domain.KeyOptimizationResults, domain.KeyParameters)
	if err != nil {
		return Table{}, err
	}

	entries, ok := raw.([]any)
	if !ok {
		return Table{}, fmt.Errorf("%w: %s.%s is not an array",
			domain.ErrUnexpectedType, domain.KeyOptimizationResults, domain.KeyParameters)
	}

	rows := make([]Row, 0, len(entries))
	seen := make(map[string]struct{})
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return Table{}, fmt.Errorf("%w: %s.%s[%d] is not an object",
				domain.ErrUnexpectedType, domain.KeyOptimizationResults, domain.KeyParameters, i)
		}
		row := make(Row, len(m))
		for k, v := range m {
			row[k] = v
			seen[k] = struct{}{}
		}
		rows = append(rows, row)
	}

	metrics.ParametersProjected.Add(float64(len(rows)))
	return Table{Columns: orderColumns(seen), Rows: rows}, nil
}

// orderColumns puts name, value and unit first, then the remaining keys
// in lexical order.
func orderColumns(seen map[string]struct{}) []string {
	cols := make([]string, 0, len(seen))
	for _, c := range domain.SummaryColumns {
		if _, ok := seen[c]; ok {
			cols = append(cols, c)
		}
	}

	var rest []string
	for c := range seen {
		if !slices.Contains(domain.SummaryColumns, c) {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns
func (t Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// Column returns the values of one column in row order
func (t Table) Column(name string) ([]any, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, name)
	}
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values, nil
}

// Select returns a table restricted to cols, in the given order.
// Every requested column must exist.
func (t Table) Select(cols ...string) (Table, error) {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return Table{}, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, c)
		}
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := make(Row, len(cols))
		for _, c := range cols {
			if v, ok := row[c]; ok {
				projected[c] = v
			}
		}
		rows[i] = projected
	}
	return Table{Columns: slices.Clone(cols), Rows: rows}, nil
}
