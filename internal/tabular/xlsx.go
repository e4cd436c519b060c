package tabular

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the first sheet of an Excel workbook. The first row
// is the header; every column except the reserved one is a language.
type XLSXSource struct {
	reservedColumn string
}

func NewXLSXSource(reservedColumn string) *XLSXSource {
	return &XLSXSource{reservedColumn: reservedColumn}
}

func (s *XLSXSource) CanParse(ext string) bool {
	return ext == ".xlsx" || ext == ".xlsm"
}

func (s *XLSXSource) Parse(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("Close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: %s", sheets[0], path)
	}

	table := buildTable(rows[0], rows[1:], s.reservedColumn)
	log.Debug().
		Str("sheet", sheets[0]).
		Int("rows", len(table.Rows)).
		Strs("languages", table.Columns).
		Msg("Parsed workbook")
	return table, nil
}
