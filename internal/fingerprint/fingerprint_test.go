package fingerprint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

func tree() *inventory.Item {
	return &inventory.Item{Name: "pack", Items: []*inventory.Item{
		{Name: "pouch", Items: []*inventory.Item{{Name: "flint", Count: 2}}},
		{Name: "rope"},
	}}
}

func TestSum_Deterministic(t *testing.T) {
	a, b := Sum(tree()), Sum(tree())
	if a != b {
		t.Fatalf("same shape must hash the same: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars; got %q", a)
	}
}

func TestSum_SensitiveToOrderAndNesting(t *testing.T) {
	base := Sum(tree())

	reordered := tree()
	reordered.Items[0], reordered.Items[1] = reordered.Items[1], reordered.Items[0]
	if Sum(reordered) == base {
		t.Fatal("sibling order must affect the fingerprint")
	}

	// Same pre-order name sequence, different nesting.
	flat := &inventory.Item{Name: "pack", Items: []*inventory.Item{
		{Name: "pouch"},
		{Name: "flint", Count: 2},
		{Name: "rope"},
	}}
	if Sum(flat) == base {
		t.Fatal("nesting must affect the fingerprint")
	}

	counted := tree()
	counted.Items[0].Items[0].Count = 3
	if Sum(counted) == base {
		t.Fatal("stack size must affect the fingerprint")
	}
}

func TestSum_UnchangedByNoOpRemoval(t *testing.T) {
	root := tree()
	before := Sum(root)
	visit.RemoveAllFunc(root, func(*inventory.Item) bool { return false })
	if Sum(root) != before {
		t.Fatal("a no-op removal must leave the fingerprint intact")
	}
	visit.RemoveFunc(root, func(it *inventory.Item) bool { return it.Name == "rope" }, 1)
	if Sum(root) == before {
		t.Fatal("a real removal must change the fingerprint")
	}
}

func TestLedger_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := Ledger{Entries: map[string]string{"pack.yml": Sum(tree())}}
	if err := Save(dir, l); err != nil {
		t.Fatal(err)
	}
	again, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if again.Entries["pack.yml"] != l.Entries["pack.yml"] {
		t.Fatalf("ledger lost the entry: %+v", again.Entries)
	}
}

func TestLedger_MissingFileYieldsEmpty(t *testing.T) {
	l, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a missing ledger")
	}
	if l.Entries == nil || len(l.Entries) != 0 {
		t.Fatalf("expected a usable empty ledger; got %+v", l.Entries)
	}
}

func TestLedger_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, Ledger{Entries: map[string]string{"a": "b"}}); err != nil {
		t.Fatal(err)
	}
	if got := defaultPath(dir); filepath.Dir(got) != filepath.Join(dir, ".git") {
		t.Fatalf("expected ledger under .git; got %s", got)
	}
}
