package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TextAccess treats a plain-text file as a document whose text-bearing
// elements are its non-blank lines, in file order. Blank lines are
// preserved verbatim on save.
type TextAccess struct{}

func NewTextAccess() *TextAccess { return &TextAccess{} }

func (a *TextAccess) Kind() string { return "text" }

func (a *TextAccess) CanOpen(ext string) bool {
	return ext == ".txt"
}

func (a *TextAccess) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text document: %w", err)
	}
	defer f.Close()

	doc := &textDocument{path: path}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		doc.lines = append(doc.lines, line)
		if strings.TrimSpace(line) != "" {
			doc.elements = append(doc.elements, &lineElement{doc: doc, line: len(doc.lines) - 1})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan text document: %w", err)
	}

	return doc, nil
}

type textDocument struct {
	path     string
	lines    []string
	elements []TextElement
}

func (d *textDocument) TextElements() []TextElement { return d.elements }

func (d *textDocument) Save() error {
	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(d.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("save text document: %w", err)
	}
	return nil
}

func (d *textDocument) Close() error { return nil }

type lineElement struct {
	doc  *textDocument
	line int
}

func (e *lineElement) Text() string { return e.doc.lines[e.line] }

func (e *lineElement) SetText(s string) { e.doc.lines[e.line] = s }
