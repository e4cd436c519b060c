package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVParse(t *testing.T) {
	path := writeFile(t, "trans.csv", "No,en,fr\n1,Hello,Bonjour\n2,Bye,Au revoir\n")

	table, err := NewCSVSource("No").Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(table.Columns, []string{"en", "fr"}) {
		t.Fatalf("columns = %v, want [en fr]", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0].Index != 0 || table.Rows[1].Index != 1 {
		t.Fatalf("row indices not positional: %+v", table.Rows)
	}
	if table.Rows[1].Cells["fr"] != "Au revoir" {
		t.Fatalf("cell = %q", table.Rows[1].Cells["fr"])
	}
	if _, ok := table.Rows[0].Cells["No"]; ok {
		t.Fatal("reserved column leaked into cells")
	}
}

func TestTSVParse(t *testing.T) {
	path := writeFile(t, "trans.tsv", "No\ten\tde\n1\tHello\tHallo\n")

	table, err := NewCSVSource("No").Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.Rows[0].Cells["de"] != "Hallo" {
		t.Fatalf("cell = %q", table.Rows[0].Cells["de"])
	}
}

func TestCSVParseShortRows(t *testing.T) {
	// Trailing cells may be missing; they become empty strings.
	path := writeFile(t, "trans.csv", "No,en,fr\n1,Hello\n")

	table, err := NewCSVSource("No").Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := table.Rows[0].Cells["fr"]; got != "" {
		t.Fatalf("missing cell = %q, want empty", got)
	}
}

func TestCSVParseNoReservedColumn(t *testing.T) {
	path := writeFile(t, "trans.csv", "en,fr\nHello,Bonjour\n")

	table, err := NewCSVSource("No").Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(table.Columns, []string{"en", "fr"}) {
		t.Fatalf("columns = %v", table.Columns)
	}
}

func TestCSVParseEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	if _, err := NewCSVSource("No").Parse(path); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestRegistryUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "trans.ods", "whatever")
	_, err := NewRegistry("No").Parse(path)
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("err = %v, want ErrUnsupportedSource", err)
	}
}

func TestRegistryDispatchesByExtension(t *testing.T) {
	path := writeFile(t, "trans.csv", "No,en,fr\n1,Hello,Bonjour\n")
	table, err := NewRegistry("No").Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
}
