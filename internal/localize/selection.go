package localize

import (
	"fmt"
	"slices"

	"doc-localizer/internal/tabular"
)

// Selection is a validated choice of source language and distinct
// target languages, all drawn from the table's columns.
type Selection struct {
	Source  string
	Targets []string
}

// NewSelection validates source and targets against the table. An
// empty targets list selects every column except the source. All
// checks happen here, before any document is touched.
func NewSelection(table *tabular.Table, source string, targets []string) (*Selection, error) {
	if len(table.Columns) < 2 {
		return nil, fmt.Errorf("%w: table has %d language columns", ErrEmptyLanguageSet, len(table.Columns))
	}
	if !slices.Contains(table.Columns, source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownLanguage, source)
	}

	if len(targets) == 0 {
		for _, col := range table.Columns {
			if col != source {
				targets = append(targets, col)
			}
		}
	}

	var distinct []string
	for _, t := range targets {
		if t == source {
			return nil, fmt.Errorf("%w: %q", ErrSourceIsTarget, t)
		}
		if !slices.Contains(table.Columns, t) {
			return nil, fmt.Errorf("%w: target %q", ErrUnknownLanguage, t)
		}
		if !slices.Contains(distinct, t) {
			distinct = append(distinct, t)
		}
	}
	if len(distinct) == 0 {
		return nil, ErrEmptyLanguageSet
	}

	return &Selection{Source: source, Targets: distinct}, nil
}
