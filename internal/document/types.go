package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedDocument is returned when no Access recognizes the
// document file type.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// TextElement is a text-bearing unit inside a document: a layer, frame,
// XML text node or line, depending on the document kind. The element is
// owned by its Document; callers only read and rewrite its text.
type TextElement interface {
	Text() string
	SetText(s string)
}

// Document is one open document. TextElements must return the same
// elements in the same order for an unmodified file, since element
// indices recorded against one copy are applied positionally to others.
type Document interface {
	// TextElements lists the text-bearing elements in stable order.
	TextElements() []TextElement
	// Save writes the document back to the path it was opened from.
	Save() error
	// Close releases any resources held by the open document.
	Close() error
}

// Access opens documents of one kind. Implementations exist per
// document family (page layout, vector, plain text) and are selected
// once by the Registry; nothing is inferred from ambient state.
type Access interface {
	// Kind names the document family, for logs and error messages.
	Kind() string
	// CanOpen returns true if this Access handles the given file extension.
	CanOpen(ext string) bool
	// Open opens the file at path for reading and writing.
	Open(path string) (Document, error)
}

// Registry selects the Access for a document path by extension.
type Registry struct {
	accesses []Access
}

// NewRegistry creates a Registry with the default document kinds.
func NewRegistry() *Registry {
	return &Registry{
		accesses: []Access{
			NewDocxAccess(),
			NewSVGAccess(),
			NewTextAccess(),
		},
	}
}

// ForPath returns the Access handling the given path, or
// ErrUnsupportedDocument if no kind recognizes its extension.
func (r *Registry) ForPath(path string) (Access, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range r.accesses {
		if a.CanOpen(ext) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, path)
}
