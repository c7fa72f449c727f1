package query

import (
	"testing"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

func item(name, kind string, count int, tags ...string) *inventory.Item {
	return &inventory.Item{Name: name, Kind: kind, Count: count, Tags: tags}
}

func TestCompile(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		it   *inventory.Item
		want bool
	}{
		{"empty filter matches all", Filter{}, item("x", "", 0), true},
		{"name glob hit", Filter{Name: "fl*"}, item("flint", "", 0), true},
		{"name glob miss", Filter{Name: "fl*"}, item("rope", "", 0), false},
		{"kind hit", Filter{Kind: "container"}, item("pouch", "container", 0), true},
		{"kind miss", Filter{Kind: "container"}, item("rope", "gear", 0), false},
		{"tag hit", Filter{Tag: "fire"}, item("flint", "", 0, "tool", "fire"), true},
		{"tag miss", Filter{Tag: "fire"}, item("rope", "", 0, "tool"), false},
		{"min count", Filter{MinCount: 2}, item("flint", "", 2), true},
		{"min count miss (unset count is one)", Filter{MinCount: 2}, item("rope", "", 0), false},
		{"max count", Filter{MaxCount: 1}, item("flint", "", 3), false},
		{"conditions ANDed", Filter{Name: "flint", Kind: "gear"}, item("flint", "tool", 0), false},
		{"bad glob degrades to literal", Filter{Name: "[oops"}, item("[oops", "", 0), true},
	}
	for _, tc := range cases {
		if got := Compile(tc.f)(tc.it); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCompile_LeafOnly(t *testing.T) {
	parent := item("pouch", "container", 0)
	parent.Items = []*inventory.Item{item("flint", "", 0)}
	pred := Compile(Filter{LeafOnly: true})
	if pred(parent) {
		t.Fatal("a node with children is not a leaf")
	}
	if !pred(parent.Items[0]) {
		t.Fatal("a childless node is a leaf")
	}
}

func TestCompile_DrivesRemoval(t *testing.T) {
	root := &inventory.Item{Name: "pack", Items: []*inventory.Item{
		item("flint", "", 0, "fire"),
		item("rope", "", 0),
		item("tinder", "", 0, "fire"),
	}}
	removed := visit.RemoveFunc(root, Compile(Filter{Tag: "fire"}), 1)
	if len(removed) != 1 || removed[0].Name != "flint" {
		t.Fatalf("expected the first fire-tagged item only; got %+v", removed)
	}
	if len(root.Items) != 2 {
		t.Fatalf("expected two survivors; got %+v", root.Items)
	}
}

func TestEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Fatal("zero filter should be empty")
	}
	if (Filter{Tag: "x"}).Empty() {
		t.Fatal("tag filter is not empty")
	}
}
