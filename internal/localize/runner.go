package localize

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"doc-localizer/internal/document"
	"doc-localizer/internal/matcher"
	"doc-localizer/internal/tabular"
	"doc-localizer/internal/variant"
)

// Options controls one localization run.
type Options struct {
	// Source is the source-language column name.
	Source string
	// Targets are the target-language columns; empty means every
	// column except Source.
	Targets []string
	// OutDir receives the variants; empty means the template's
	// directory.
	OutDir string
	// FailFast aborts the whole batch on the first variant failure
	// instead of continuing with the remaining languages.
	FailFast bool
	// Confirm is consulted with the unmatched row texts before any
	// variant is generated. Returning false cancels the run. A nil
	// Confirm proceeds unconditionally.
	Confirm func(unmatched []string) bool
}

// Report is the outcome of a run: what matched, what was generated,
// and which languages failed.
type Report struct {
	LayerMap  matcher.LayerMap
	Unmatched []string
	Results   []variant.Result
	Failures  []VariantError
}

// Runner wires the tabular and document layers to the matcher and
// variant generator. All work is strictly sequential: the layer map is
// built once, then variants are generated one language at a time.
type Runner struct {
	documents *document.Registry
	tables    *tabular.Registry
}

func NewRunner(documents *document.Registry, tables *tabular.Registry) *Runner {
	return &Runner{documents: documents, tables: tables}
}

// Run localizes templatePath using the table at tablePath.
func (r *Runner) Run(templatePath, tablePath string, opts Options) (*Report, error) {
	table, err := r.tables.Parse(tablePath)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}

	sel, err := NewSelection(table, opts.Source, opts.Targets)
	if err != nil {
		return nil, err
	}

	access, err := r.documents.ForPath(templatePath)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("template", templatePath).
		Str("kind", access.Kind()).
		Str("source", sel.Source).
		Strs("targets", sel.Targets).
		Msg("Starting localization run")

	// The template is opened once, read-only in effect: it is only
	// scanned for the layer map and never saved.
	tmpl, err := access.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	layerMap, unmatched := matcher.BuildLayerMap(tmpl.TextElements(), table.Rows, sel.Source)
	if err := tmpl.Close(); err != nil {
		return nil, fmt.Errorf("close template: %w", err)
	}

	report := &Report{LayerMap: layerMap, Unmatched: unmatched}

	if len(unmatched) > 0 && opts.Confirm != nil && !opts.Confirm(unmatched) {
		return report, ErrCancelled
	}

	for _, lang := range sel.Targets {
		res, err := variant.Generate(access, templatePath, lang, table.Rows, layerMap, opts.OutDir)
		if err != nil {
			verr := VariantError{Language: lang, Err: err}
			log.Error().Err(err).Str("language", lang).Msg("Variant failed")
			if opts.FailFast {
				return report, &verr
			}
			report.Failures = append(report.Failures, verr)
			continue
		}
		report.Results = append(report.Results, *res)
	}

	log.Info().
		Int("generated", len(report.Results)).
		Int("failed", len(report.Failures)).
		Msg("Localization run complete")

	return report, nil
}
