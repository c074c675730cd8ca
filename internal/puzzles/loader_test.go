package puzzles

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePuzzleYAML = `id: spiral4
name: Spiral
rows:
  - [Corner, Straight, Corner]
  - [Straight, Cross, Straight]
  - [Corner, Straight, Corner]
`

func writePuzzleFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	p, err := ParseYAML([]byte(samplePuzzleYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if p.ID != "spiral4" || p.Name != "Spiral" {
		t.Errorf("parsed id/name = %q/%q", p.ID, p.Name)
	}
	if p.Width() != 3 || p.Height() != 3 {
		t.Errorf("parsed size = %dx%d, want 3x3", p.Width(), p.Height())
	}
}

func TestParseYAMLMissingID(t *testing.T) {
	if _, err := ParseYAML([]byte("rows:\n  - [End]\n")); err == nil {
		t.Error("ParseYAML should reject a file without an id")
	}
}

func TestParseYAMLDefaultsName(t *testing.T) {
	p, err := ParseYAML([]byte("id: x\nrows:\n  - [End]\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if p.Name != "x" {
		t.Errorf("Name = %q, want the id", p.Name)
	}
}

func TestLoaderMergesBuiltinsAndFiles(t *testing.T) {
	dir := t.TempDir()
	writePuzzleFile(t, dir, "spiral.yaml", samplePuzzleYAML)
	writePuzzleFile(t, dir, "notes.txt", "not a puzzle")

	l := NewLoader(dir)
	ids, err := l.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}

	want := map[string]bool{"classic": true, "spiral4": true}
	found := 0
	for _, id := range ids {
		if want[id] {
			found++
		}
	}
	if found != len(want) {
		t.Errorf("ListIDs() = %v, want it to include classic and spiral4", ids)
	}

	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ListIDs() not sorted: %v", ids)
		}
	}
}

func TestLoaderFileShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	writePuzzleFile(t, dir, "classic.yaml", "id: classic\nname: Overridden\nrows:\n  - [End, End]\n")

	p, err := NewLoader(dir).LoadByID("classic")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if p.Name != "Overridden" {
		t.Errorf("Name = %q, want file to shadow the builtin", p.Name)
	}
}

func TestLoadByIDPath(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzleFile(t, dir, "spiral.yaml", samplePuzzleYAML)

	p, err := NewLoader("").LoadByID(path)
	if err != nil {
		t.Fatalf("LoadByID(path): %v", err)
	}
	if p.ID != "spiral4" {
		t.Errorf("ID = %q, want spiral4", p.ID)
	}
}

func TestLoadByIDUnknown(t *testing.T) {
	if _, err := NewLoader("").LoadByID("no-such-puzzle"); err == nil {
		t.Error("LoadByID should fail for unknown IDs")
	}
}

func TestLoaderWithoutRootServesBuiltins(t *testing.T) {
	p, err := NewLoader("").LoadByID("classic")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if p.Width() != 4 || p.Height() != 4 {
		t.Errorf("classic size = %dx%d, want 4x4", p.Width(), p.Height())
	}
}
