package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/holdall/holdall/internal/inventory"
)

// Run starts the interactive browser over a loaded tree. reloadFunc re-reads
// the manifest when the user presses r.
func Run(root *inventory.Item, manifest string, reloadFunc func() (*inventory.Item, error)) error {
	m := NewModel(root, manifest, reloadFunc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
