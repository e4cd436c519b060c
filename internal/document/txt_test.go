package document

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTextFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextOpenSkipsBlankLines(t *testing.T) {
	path := writeTextFile(t, "Title\n\n  \nBody\n")

	doc, err := NewTextAccess().Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	els := doc.TextElements()
	if len(els) != 2 {
		t.Fatalf("elements = %d, want 2", len(els))
	}
	if els[0].Text() != "Title" || els[1].Text() != "Body" {
		t.Fatalf("element texts = %q, %q", els[0].Text(), els[1].Text())
	}
}

func TestTextEditSaveRoundTrip(t *testing.T) {
	path := writeTextFile(t, "Title\n\nBody\n")

	doc, err := NewTextAccess().Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	doc.TextElements()[1].SetText("Corps")
	if err := doc.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc.Close()

	content, _ := os.ReadFile(path)
	if string(content) != "Title\n\nCorps\n" {
		t.Fatalf("saved content = %q", content)
	}
}

func TestTextStableEnumerationOrder(t *testing.T) {
	path := writeTextFile(t, "one\ntwo\nthree\n")
	access := NewTextAccess()

	first, err := access.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := access.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	a, b := first.TextElements(), second.TextElements()
	if len(a) != len(b) {
		t.Fatalf("element counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Text() != b[i].Text() {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].Text(), b[i].Text())
		}
	}
}
