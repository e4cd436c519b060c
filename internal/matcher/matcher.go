package matcher

import (
	"github.com/rs/zerolog/log"

	"doc-localizer/internal/document"
	"doc-localizer/internal/tabular"
	"doc-localizer/internal/textutil"
)

// NoMatch marks a row with no corresponding document element.
const NoMatch = -1

// LayerMap maps row index to element index, or NoMatch. It is built
// once per template and reused read-only for every language variant.
type LayerMap []int

// Matched counts the rows that found an element.
func (m LayerMap) Matched() int {
	n := 0
	for _, idx := range m {
		if idx != NoMatch {
			n++
		}
	}
	return n
}

// BuildLayerMap reconciles spreadsheet rows against a document's text
// elements. Comparison is on whitespace-stripped text; any other
// difference is a non-match. Each element can be claimed at most once.
// When several rows share the same normalized text, the earliest row
// claims the earliest free element with that text; rows left without a
// free element are reported in the second return value, carrying their
// original (non-normalized) source-language text.
func BuildLayerMap(elements []document.TextElement, rows []tabular.Row, sourceLanguage string) (LayerMap, []string) {
	// Free-candidate pool: normalized key -> queue of element indices
	// in enumeration order. FIFO claiming keeps duplicate resolution
	// deterministic.
	free := make(map[string][]int, len(elements))
	for i, el := range elements {
		key := textutil.NormalizeKey(el.Text())
		free[key] = append(free[key], i)
	}

	layerMap := make(LayerMap, len(rows))
	var unmatched []string

	for _, row := range rows {
		source := row.Cells[sourceLanguage]
		key := textutil.NormalizeKey(source)

		queue := free[key]
		if len(queue) == 0 {
			layerMap[row.Index] = NoMatch
			unmatched = append(unmatched, source)
			log.Debug().
				Int("row", row.Index).
				Str("text", textutil.Truncate(source, 40)).
				Msg("No matching element")
			continue
		}

		layerMap[row.Index] = queue[0]
		free[key] = queue[1:]
	}

	log.Info().
		Int("rows", len(rows)).
		Int("elements", len(elements)).
		Int("matched", layerMap.Matched()).
		Int("unmatched", len(unmatched)).
		Msg("Built layer map")

	return layerMap, unmatched
}
