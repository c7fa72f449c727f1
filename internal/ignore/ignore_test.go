package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".holdallignore")
	content := "scrap/\n*-broken\n# comment\n\npack/pouch/needle\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"scrap/bent-nail":      true,
		"pack/scrap/bent-nail": true,
		"pack/lantern-broken":  true,
		"pack/pouch/needle":    true,
		"pack/pouch/flint":     false,
		"pack/rope":            false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestLoad_MissingFileYieldsEmptyMatcher(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if m.Match("anything") {
		t.Fatal("empty matcher must match nothing")
	}
}
