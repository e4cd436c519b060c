package localize

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLanguageSet means the table has fewer than two language
	// columns, or no target language was left after selection.
	ErrEmptyLanguageSet = errors.New("no target languages to generate")

	// ErrUnknownLanguage means a requested language is not a column of
	// the parsed table.
	ErrUnknownLanguage = errors.New("language not present in table")

	// ErrSourceIsTarget means the source language was also requested as
	// a target.
	ErrSourceIsTarget = errors.New("source language cannot be a target")

	// ErrCancelled means the caller declined to proceed after seeing
	// the unmatched rows.
	ErrCancelled = errors.New("cancelled before variant generation")
)

// VariantError reports a failed variant, identifying the language so
// the caller can fix the input without opening the document.
type VariantError struct {
	Language string
	Err      error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant %s: %v", e.Language, e.Err)
}

func (e *VariantError) Unwrap() error { return e.Err }
