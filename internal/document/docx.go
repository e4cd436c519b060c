package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

const docxMainPart = "word/document.xml"

// DocxAccess opens DOCX page-layout documents. The package zip is held
// in memory; text-bearing elements are the paragraphs (w:p) of the main
// document part that contain at least one text run (w:t). Rewriting a
// paragraph puts the whole new text into its first run and empties the
// rest, so run-level formatting of the first run survives.
type DocxAccess struct{}

func NewDocxAccess() *DocxAccess { return &DocxAccess{} }

func (a *DocxAccess) Kind() string { return "pagelayout" }

func (a *DocxAccess) CanOpen(ext string) bool {
	return ext == ".docx"
}

func (a *DocxAccess) Open(path string) (Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx package: %w", err)
	}
	defer zr.Close()

	doc := &docxDocument{path: path, parts: make(map[string][]byte)}

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		doc.partOrder = append(doc.partOrder, f.Name)
		doc.parts[f.Name] = content
	}

	main, ok := doc.parts[docxMainPart]
	if !ok {
		return nil, fmt.Errorf("not a docx document, missing %s: %s", docxMainPart, path)
	}

	doc.tree = etree.NewDocument()
	if err := doc.tree.ReadFromBytes(main); err != nil {
		return nil, fmt.Errorf("parse %s: %w", docxMainPart, err)
	}

	for _, p := range doc.tree.FindElements("//w:p") {
		runs := p.FindElements(".//w:t")
		if len(runs) == 0 {
			continue
		}
		doc.elements = append(doc.elements, &docxParagraph{runs: runs})
	}

	return doc, nil
}

type docxDocument struct {
	path      string
	partOrder []string
	parts     map[string][]byte
	tree      *etree.Document
	elements  []TextElement
}

func (d *docxDocument) TextElements() []TextElement { return d.elements }

func (d *docxDocument) Save() error {
	main, err := d.tree.WriteToBytes()
	if err != nil {
		return fmt.Errorf("serialize %s: %w", docxMainPart, err)
	}
	d.parts[docxMainPart] = main

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range d.partOrder {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", name, err)
		}
		if _, err := w.Write(d.parts[name]); err != nil {
			return fmt.Errorf("write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx package: %w", err)
	}

	if err := os.WriteFile(d.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save docx document: %w", err)
	}
	return nil
}

func (d *docxDocument) Close() error { return nil }

// docxParagraph exposes one paragraph's runs as a single text element.
type docxParagraph struct {
	runs []*etree.Element
}

func (p *docxParagraph) Text() string {
	var b bytes.Buffer
	for _, r := range p.runs {
		b.WriteString(r.Text())
	}
	return b.String()
}

func (p *docxParagraph) SetText(s string) {
	p.runs[0].SetText(s)
	for _, r := range p.runs[1:] {
		r.SetText("")
	}
}
