package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedSource is returned when no parser recognizes the
// spreadsheet file type.
var ErrUnsupportedSource = errors.New("unsupported spreadsheet type")

// Row is one translation entry: a mapping from language name to cell
// text, plus the row's stable 0-based position in the parsed table.
// Rows are never mutated after parsing.
type Row struct {
	Index int
	Cells map[string]string
}

// Table is the parsed spreadsheet. Columns preserves header order and
// contains only language columns; the reserved row-number column is
// removed at parse time.
type Table struct {
	Columns []string
	Rows    []Row
}

// Source is the interface for spreadsheet format parsers.
type Source interface {
	// CanParse returns true if this source handles the given file extension.
	CanParse(ext string) bool
	// Parse reads the file into a Table, dropping the reserved column.
	Parse(path string) (*Table, error)
}

// Registry dispatches a spreadsheet file to the matching Source.
type Registry struct {
	sources []Source
}

// NewRegistry creates a Registry with the default sources.
func NewRegistry(reservedColumn string) *Registry {
	return &Registry{
		sources: []Source{
			NewXLSXSource(reservedColumn),
			NewCSVSource(reservedColumn),
		},
	}
}

// Parse selects a Source by file extension and parses the file.
func (r *Registry) Parse(path string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range r.sources {
		if s.CanParse(ext) {
			return s.Parse(path)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
}

// buildTable assembles a Table from a header row and data rows,
// dropping the reserved row-number column. Cells missing at a row's
// tail become empty strings.
func buildTable(header []string, records [][]string, reservedColumn string) *Table {
	reservedIdx := -1
	var columns []string
	for i, name := range header {
		name = strings.TrimSpace(name)
		if reservedIdx < 0 && strings.EqualFold(name, reservedColumn) {
			reservedIdx = i
			continue
		}
		columns = append(columns, name)
	}

	table := &Table{Columns: columns}
	for _, record := range records {
		cells := make(map[string]string, len(columns))
		col := 0
		for i := range header {
			if i == reservedIdx {
				continue
			}
			if i < len(record) {
				cells[columns[col]] = record[i]
			} else {
				cells[columns[col]] = ""
			}
			col++
		}
		table.Rows = append(table.Rows, Row{Index: len(table.Rows), Cells: cells})
	}
	return table
}
