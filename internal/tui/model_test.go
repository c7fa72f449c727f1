package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/holdall/holdall/internal/inventory"
)

func sampleTree() *inventory.Item {
	return &inventory.Item{Name: "pack", Kind: "backpack", Items: []*inventory.Item{
		{Name: "pouch", Items: []*inventory.Item{
			{Name: "flint", Count: 2, Tags: []string{"firestarting"}},
			{Name: "tinder"},
		}},
		{Name: "rope", Kind: "tool"},
	}}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func rowPaths(m Model) []string {
	var out []string
	for _, r := range m.rows {
		out = append(out, r.path)
	}
	return out
}

func TestRebuildRows_FullExpansion(t *testing.T) {
	m := NewModel(sampleTree(), "pack.yml", nil)

	want := []string{"pack", "pack/pouch", "pack/pouch/flint", "pack/pouch/tinder", "pack/rope"}
	got := rowPaths(m)
	if len(got) != len(want) {
		t.Fatalf("expected %d rows; got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCollapse_HidesSubtree(t *testing.T) {
	m := sized(NewModel(sampleTree(), "pack.yml", nil))

	// move to pouch and fold it
	m = press(t, m, "j", "enter")

	got := rowPaths(m)
	for _, p := range got {
		if strings.HasPrefix(p, "pack/pouch/") {
			t.Fatalf("collapsed subtree still visible: %v", got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows after collapse; got %v", got)
	}

	// unfold brings it back
	m = press(t, m, "enter")
	if len(m.rows) != 5 {
		t.Fatalf("expected 5 rows after expand; got %v", rowPaths(m))
	}
}

func TestSearch_FiltersByPath(t *testing.T) {
	m := sized(NewModel(sampleTree(), "pack.yml", nil))

	m = press(t, m, "/")
	if !m.searchMode {
		t.Fatal("expected search mode after /")
	}
	m = press(t, m, "f", "l", "i", "n", "t", "enter")

	got := rowPaths(m)
	if len(got) != 1 || got[0] != "pack/pouch/flint" {
		t.Fatalf("expected only the flint row; got %v", got)
	}

	m = press(t, m, "esc")
	if len(m.rows) != 5 {
		t.Fatalf("esc should clear the filter; got %v", rowPaths(m))
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	root := sampleTree()
	m := sized(NewModel(root, "pack.yml", nil))

	// d alone must not remove anything
	m = press(t, m, "j", "d")
	if !m.confirmDelete {
		t.Fatal("expected pending confirmation after d")
	}
	if len(root.Items) != 2 {
		t.Fatal("node removed without confirmation")
	}

	// any other key cancels
	m = press(t, m, "j")
	if m.confirmDelete {
		t.Fatal("confirmation should cancel on other keys")
	}
	if len(root.Items) != 2 {
		t.Fatal("cancelled delete still removed the node")
	}
}

func TestDelete_ConfirmedRemovesSubtree(t *testing.T) {
	root := sampleTree()
	m := sized(NewModel(root, "pack.yml", nil))

	m = press(t, m, "j", "d", "y")

	if len(root.Items) != 1 || root.Items[0].Name != "rope" {
		t.Fatalf("expected only rope left; got %v", rowPaths(m))
	}
	if !m.dirty {
		t.Fatal("removal should mark the model dirty")
	}
	got := rowPaths(m)
	if len(got) != 2 || got[1] != "pack/rope" {
		t.Fatalf("rows not rebuilt after removal: %v", got)
	}
}

func TestDelete_RootRefused(t *testing.T) {
	root := sampleTree()
	m := sized(NewModel(root, "pack.yml", nil))

	m = press(t, m, "d", "y")
	if m.root != root || len(root.Items) != 2 {
		t.Fatal("root must never be removable")
	}
}

func TestReloadDone_SwapsTree(t *testing.T) {
	m := sized(NewModel(sampleTree(), "pack.yml", nil))
	m.reloading = true

	fresh := &inventory.Item{Name: "crate"}
	next, _ := m.Update(reloadDoneMsg{root: fresh})
	m = next.(Model)

	if m.reloading {
		t.Fatal("reloading flag should clear")
	}
	if m.root != fresh {
		t.Fatal("reload should swap the tree")
	}
	if got := rowPaths(m); len(got) != 1 || got[0] != "crate" {
		t.Fatalf("rows not rebuilt from fresh tree: %v", got)
	}
}

func TestView_ShowsDirtyMarker(t *testing.T) {
	m := sized(NewModel(sampleTree(), "pack.yml", nil))
	if strings.Contains(m.View(), "pack.yml *") {
		t.Fatal("clean model should not show the dirty marker")
	}
	m.dirty = true
	if !strings.Contains(m.View(), "pack.yml *") {
		t.Fatal("dirty model should mark the title")
	}
}

func TestRenderRow_TagToggle(t *testing.T) {
	m := NewModel(sampleTree(), "pack.yml", nil)
	flint := row{item: &inventory.Item{Name: "flint", Tags: []string{"firestarting"}}}

	m.prefs.ShowTags = true
	if !strings.Contains(m.renderRow(flint), "firestarting") {
		t.Fatal("tags should render when enabled")
	}
	m.prefs.ShowTags = false
	if strings.Contains(m.renderRow(flint), "firestarting") {
		t.Fatal("tags should hide when disabled")
	}
}
