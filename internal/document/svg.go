package document

import (
	"fmt"

	"github.com/beevik/etree"
)

// SVGAccess opens SVG vector documents. Text-bearing elements are the
// leaf text nodes: every <tspan>, plus every <text> that holds its
// characters directly instead of through tspans. Walk order is document
// order, which is stable for an unmodified file.
type SVGAccess struct{}

func NewSVGAccess() *SVGAccess { return &SVGAccess{} }

func (a *SVGAccess) Kind() string { return "vector" }

func (a *SVGAccess) CanOpen(ext string) bool {
	return ext == ".svg"
}

func (a *SVGAccess) Open(path string) (Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("open svg document: %w", err)
	}
	root := tree.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("not an svg document: %s", path)
	}

	doc := &svgDocument{path: path, tree: tree}
	collectSVGText(root, &doc.elements)
	return doc, nil
}

// collectSVGText appends leaf text holders under el in document order.
func collectSVGText(el *etree.Element, out *[]TextElement) {
	switch el.Tag {
	case "text":
		spans := el.SelectElements("tspan")
		if len(spans) == 0 {
			*out = append(*out, &svgElement{el: el})
			return
		}
		for _, span := range spans {
			*out = append(*out, &svgElement{el: span})
		}
		return
	}
	for _, child := range el.ChildElements() {
		collectSVGText(child, out)
	}
}

type svgDocument struct {
	path     string
	tree     *etree.Document
	elements []TextElement
}

func (d *svgDocument) TextElements() []TextElement { return d.elements }

func (d *svgDocument) Save() error {
	if err := d.tree.WriteToFile(d.path); err != nil {
		return fmt.Errorf("save svg document: %w", err)
	}
	return nil
}

func (d *svgDocument) Close() error { return nil }

type svgElement struct {
	el *etree.Element
}

func (e *svgElement) Text() string { return e.el.Text() }

func (e *svgElement) SetText(s string) { e.el.SetText(s) }
