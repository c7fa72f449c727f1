package inventory

import "testing"

func testTree(t *testing.T) *Item {
	t.Helper()
	root, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestResolve(t *testing.T) {
	root := testTree(t)
	cases := []struct {
		path string
		want string // resolved name, "" = not found
	}{
		{"", "backpack"},
		{"backpack", "backpack"},
		{"pouch", "pouch"},
		{"backpack/pouch/flint", "flint"},
		{"pouch/flint", "flint"},
		{"pouch/*", "flint"}, // first match wins
		{"p*ch/tinder", "tinder"},
		{"pouch/axe", ""},
		{"rope/anything", ""},
	}
	for _, tc := range cases {
		got, ok := Resolve(root, tc.path)
		if tc.want == "" {
			if ok {
				t.Fatalf("Resolve(%q): expected no match; got %s", tc.path, got.Name)
			}
			continue
		}
		if !ok || got.Name != tc.want {
			t.Fatalf("Resolve(%q): expected %s; got %v ok=%v", tc.path, tc.want, got, ok)
		}
	}
}

func TestPath(t *testing.T) {
	root := testTree(t)
	flint := root.Items[0].Items[0]
	if p, ok := Path(root, flint); !ok || p != "backpack/pouch/flint" {
		t.Fatalf("expected backpack/pouch/flint; got %q ok=%v", p, ok)
	}
	if p, ok := Path(root, root); !ok || p != "backpack" {
		t.Fatalf("root path should be its own name; got %q ok=%v", p, ok)
	}
	if _, ok := Path(root, &Item{Name: "outsider"}); ok {
		t.Fatal("a foreign node has no path")
	}
}
