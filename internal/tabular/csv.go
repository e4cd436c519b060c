package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// CSVSource reads comma-separated (.csv) and tab-separated (.tsv)
// translation tables. The first record is the header.
type CSVSource struct {
	reservedColumn string
}

func NewCSVSource(reservedColumn string) *CSVSource {
	return &CSVSource{reservedColumn: reservedColumn}
}

func (s *CSVSource) CanParse(ext string) bool {
	return ext == ".csv" || ext == ".tsv"
}

func (s *CSVSource) Parse(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	// Rows may have trailing columns missing.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table is empty: %s", path)
	}

	table := buildTable(records[0], records[1:], s.reservedColumn)
	log.Debug().
		Int("rows", len(table.Rows)).
		Strs("languages", table.Columns).
		Msg("Parsed table")
	return table, nil
}
