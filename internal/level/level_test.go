package level

import (
	"os"
	"path/filepath"
	"testing"

	"blockroll/internal/board"
)

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte("id: \"x1\"\nname: Test\nlayout:\n  - \"S#*\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if lvl.ID != "x1" || lvl.Name != "Test" {
		t.Errorf("parsed id/name = %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Start != (board.Cell{X: 0, Z: 0}) {
		t.Errorf("start = %v, expected (0,0)", lvl.Start)
	}
	if lvl.Board.Win() != (board.Cell{X: 2, Z: 0}) {
		t.Errorf("win = %v, expected (2,0)", lvl.Board.Win())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{"},
		{"no id", "name: X\nlayout: [\"S#*\"]\n"},
		{"no layout", "id: \"x\"\nname: X\n"},
		{"bad layout", "id: \"x\"\nlayout: [\"S##\"]\n"}, // no winning cell
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEmbeddedCampaign(t *testing.T) {
	levels, err := NewLoader("").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(levels) == 0 {
		t.Fatal("embedded campaign is empty")
	}

	seen := make(map[string]bool)
	for i, lvl := range levels {
		if lvl.ID == "" {
			t.Errorf("levels[%d] has empty ID", i)
		}
		if seen[lvl.ID] {
			t.Errorf("duplicate level ID %q", lvl.ID)
		}
		seen[lvl.ID] = true

		if i > 0 && levels[i-1].ID >= lvl.ID {
			t.Errorf("levels not sorted: %q before %q", levels[i-1].ID, lvl.ID)
		}
		if !lvl.Board.Has(lvl.Start) {
			t.Errorf("level %q start %v is not on the board", lvl.ID, lvl.Start)
		}
	}
}

func TestLoaderExternalDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.yaml", "id: \"b\"\nname: Second\nlayout: [\"S##*\"]\n")
	write("a.yaml", "id: \"a\"\nname: First\nlayout: [\"*##S\"]\n")
	write("notes.txt", "ignored")

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("loaded %d levels, expected 2", len(levels))
	}
	if levels[0].ID != "a" || levels[1].ID != "b" {
		t.Errorf("order = [%s %s], expected [a b]", levels[0].ID, levels[1].ID)
	}
	if levels[0].FilePath == "" {
		t.Error("external level should record its file path")
	}

	lvl, err := NewLoader(dir).LoadByID("b")
	if err != nil {
		t.Fatalf("LoadByID(b) failed: %v", err)
	}
	if lvl.Name != "Second" {
		t.Errorf("LoadByID(b).Name = %q", lvl.Name)
	}
	if _, err := NewLoader(dir).LoadByID("zzz"); err == nil {
		t.Error("LoadByID on unknown ID should fail")
	}
}

func TestLoaderRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: \"x\"\nlayout: [\"##\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader(dir).LoadAll(); err == nil {
		t.Error("broken level file should fail the load")
	}
}
