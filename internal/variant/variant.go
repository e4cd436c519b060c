package variant

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"doc-localizer/internal/document"
	"doc-localizer/internal/matcher"
	"doc-localizer/internal/tabular"
)

// Result describes one generated language variant.
type Result struct {
	Language string
	Path     string
	Edits    int
}

// DerivePath builds the variant filename for a target language by
// inserting "_<lang>" before the template's final extension; a name
// without an extension gets the suffix appended. The variant is placed
// in outDir, or next to the template when outDir is empty.
func DerivePath(templatePath, lang, outDir string) string {
	dir := filepath.Dir(templatePath)
	if outDir != "" {
		dir = outDir
	}
	base := filepath.Base(templatePath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	return filepath.Join(dir, name+"_"+lang+ext)
}

// Generate produces one language variant: copy the template to the
// derived path, open the copy, rewrite every mapped element with the
// row's target-language cell, save and close. The template itself is
// never opened for writing, so variants cannot contaminate each other
// or the source.
//
// Precondition: the copy enumerates the same elements in the same order
// as the template the layer map was built against.
func Generate(access document.Access, templatePath, lang string, rows []tabular.Row, layerMap matcher.LayerMap, outDir string) (*Result, error) {
	outPath := DerivePath(templatePath, lang, outDir)

	if err := copyFile(templatePath, outPath); err != nil {
		return nil, fmt.Errorf("copy template for %s: %w", lang, err)
	}

	doc, err := access.Open(outPath)
	if err != nil {
		return nil, fmt.Errorf("open variant for %s: %w", lang, err)
	}
	defer doc.Close()

	elements := doc.TextElements()
	edits := 0
	for rowIdx, elIdx := range layerMap {
		if elIdx == matcher.NoMatch {
			continue
		}
		if elIdx >= len(elements) {
			return nil, fmt.Errorf("variant for %s has %d elements, layer map expects index %d", lang, len(elements), elIdx)
		}
		elements[elIdx].SetText(rows[rowIdx].Cells[lang])
		edits++
	}

	if err := doc.Save(); err != nil {
		return nil, fmt.Errorf("save variant for %s: %w", lang, err)
	}

	log.Info().
		Str("language", lang).
		Str("path", outPath).
		Int("edits", edits).
		Msg("Variant generated")

	return &Result{Language: lang, Path: outPath, Edits: edits}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}
	return nil
}
