package holdall

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `name: pack
kind: backpack
items:
  - name: pouch
    items:
      - name: flint
        count: 2
        tags: [firestarting]
      - name: tinder
        tags: [firestarting]
  - name: rope
    kind: tool
`

func TestRoundTrip_Smoke(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if root.Name != "pack" {
		t.Fatalf("expected root pack; got %q", root.Name)
	}

	matches := Find(root, Filter{Tag: "firestarting"})
	if len(matches) != 2 {
		t.Fatalf("expected 2 firestarting nodes; got %d", len(matches))
	}

	removed := Remove(root, Filter{Name: "flint"}, 1)
	if len(removed) != 1 || removed[0].Name != "flint" {
		t.Fatalf("expected one flint removed; got %v", removed)
	}
	if err := Save(path, root); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if Find(again, Filter{Name: "flint"}) != nil {
		t.Fatal("flint should be gone after save/reload")
	}
	if fp := Fingerprint(again); fp != Fingerprint(root) {
		t.Fatal("fingerprint should survive a round trip")
	}
}

func TestResolveAndPath(t *testing.T) {
	root, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	node, ok := Resolve(root, "pouch/flint")
	if !ok {
		t.Fatal("expected to resolve pouch/flint")
	}
	p, ok := Path(root, node)
	if !ok || p != "pack/pouch/flint" {
		t.Fatalf("expected pack/pouch/flint; got %q", p)
	}
	st := Measure(root)
	if st.Nodes != 5 {
		t.Fatalf("expected 5 nodes; got %d", st.Nodes)
	}
}
