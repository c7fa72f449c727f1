package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// row is one visible line of the browser: a node plus its display context.
type row struct {
	item      *inventory.Item
	path      string
	depth     int
	hasKids   bool
	collapsed bool
}

type (
	statusMsg      string
	clearStatusMsg struct{}
	reloadDoneMsg  struct {
		root *inventory.Item
		err  error
	}
)

// Model is the state of the interactive tree browser.
type Model struct {
	root     *inventory.Item
	manifest string

	viewport    viewport.Model
	searchInput textinput.Model
	spin        spinner.Model

	rows      []row
	cursor    int
	collapsed map[*inventory.Item]bool

	searchMode  bool
	searchQuery string

	confirmDelete bool
	dirty         bool // unsaved structural edits
	reloading     bool
	showHelp      bool
	quitting      bool
	ready         bool

	statusMessage string

	prefs  Prefs
	width  int
	height int

	reloadFunc func() (*inventory.Item, error)
}

// NewModel builds the browser over an already-loaded tree. reloadFunc re-reads
// the manifest; nil disables the reload key.
func NewModel(root *inventory.Item, manifest string, reloadFunc func() (*inventory.Item, error)) Model {
	ti := textinput.New()
	ti.Placeholder = "search paths"
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		root:        root,
		manifest:    manifest,
		searchInput: ti,
		spin:        sp,
		collapsed:   map[*inventory.Item]bool{},
		prefs:       LoadPrefs(),
		reloadFunc:  reloadFunc,
	}
	m.rebuildRows()
	return m
}

// rebuildRows flattens the tree into visible lines. Collapsed nodes prune
// their subtree via the walk's Skip signal; an active search ignores collapse
// state and filters the full expansion by path substring.
func (m *Model) rebuildRows() {
	var rows []row
	depth := map[*inventory.Item]int{}
	paths := map[*inventory.Item]string{}

	visit.WalkWithParent(m.root, func(n, p *inventory.Item) visit.Response {
		d := 0
		path := n.Name
		if p != nil {
			d = depth[p] + 1
			path = paths[p] + inventory.Sep + n.Name
		}
		depth[n] = d
		paths[n] = path

		r := row{
			item:      n,
			path:      path,
			depth:     d,
			hasKids:   len(n.Items) > 0,
			collapsed: m.collapsed[n],
		}
		if m.searchQuery != "" {
			if strings.Contains(strings.ToLower(path), strings.ToLower(m.searchQuery)) {
				rows = append(rows, r)
			}
			return visit.Next
		}
		rows = append(rows, r)
		if r.collapsed {
			return visit.Skip
		}
		return visit.Next
	})

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRows())
	// keep the cursor in view
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if bottom := m.viewport.YOffset + m.viewport.Height - 1; m.cursor > bottom {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMessage = s
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 4 // title, search/status, help hint
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.syncViewport()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case statusMsg:
		return m, m.setStatus(string(msg))

	case reloadDoneMsg:
		m.reloading = false
		if msg.err != nil {
			return m, m.setStatus("reload failed: " + msg.err.Error())
		}
		m.root = msg.root
		m.collapsed = map[*inventory.Item]bool{}
		m.dirty = false
		m.rebuildRows()
		return m, m.setStatus("reloaded " + m.manifest)

	case spinner.TickMsg:
		if !m.reloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchMode = false
		m.searchQuery = m.searchInput.Value()
		m.cursor = 0
		m.rebuildRows()
		return m, nil
	case tea.KeyEsc:
		m.searchMode = false
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.rebuildRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// a pending delete only listens for its confirmation
	if m.confirmDelete && key != "y" {
		m.confirmDelete = false
		if key != "d" {
			return m, m.setStatus("delete cancelled")
		}
	}

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncViewport()
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.syncViewport()
		return m, nil

	case "enter", " ":
		if r, ok := m.currentRow(); ok && r.hasKids && m.searchQuery == "" {
			m.collapsed[r.item] = !m.collapsed[r.item]
			m.rebuildRows()
		}
		return m, nil

	case "/":
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.searchInput.SetValue("")
			m.rebuildRows()
		}
		return m, nil

	case "d":
		r, ok := m.currentRow()
		if !ok || r.item == m.root {
			return m, m.setStatus("the root cannot be removed")
		}
		m.confirmDelete = true
		return m, m.setStatus("remove " + r.path + "? press y to confirm")

	case "y":
		if !m.confirmDelete {
			return m, nil
		}
		m.confirmDelete = false
		r, ok := m.currentRow()
		if !ok || r.item == m.root {
			return m, nil
		}
		visit.Remove(m.root, r.item)
		m.dirty = true
		m.rebuildRows()
		return m, m.setStatus("removed " + r.path + " (unsaved)")

	case "s":
		if !m.dirty {
			return m, m.setStatus("nothing to save")
		}
		if err := inventory.Save(m.manifest, m.root); err != nil {
			return m, m.setStatus("save failed: " + err.Error())
		}
		m.dirty = false
		return m, m.setStatus("saved " + m.manifest)

	case "c":
		if r, ok := m.currentRow(); ok {
			if err := clipboard.WriteAll(r.path); err != nil {
				return m, m.setStatus("clipboard unavailable")
			}
			return m, m.setStatus("copied " + r.path)
		}
		return m, nil

	case "r":
		if m.reloadFunc == nil || m.reloading {
			return m, nil
		}
		m.reloading = true
		reload := m.reloadFunc
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			root, err := reload()
			return reloadDoneMsg{root: root, err: err}
		})

	case "t":
		m.prefs.ShowTags = !m.prefs.ShowTags
		_ = SavePrefs(m.prefs)
		m.syncViewport()
		return m, nil

	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}
	return m, nil
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) renderRows() string {
	var sb strings.Builder
	for i, r := range m.rows {
		line := m.renderRow(r)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderRow(r row) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", r.depth))
	switch {
	case !r.hasKids:
		sb.WriteString("  ")
	case r.collapsed:
		sb.WriteString("▸ ")
	default:
		sb.WriteString("▾ ")
	}
	sb.WriteString(r.item.Name)
	if r.item.Kind != "" {
		sb.WriteString(kindStyle.Render(" [" + r.item.Kind + "]"))
	}
	if r.item.Count > 1 {
		sb.WriteString(countStyle.Render(fmt.Sprintf(" x%d", r.item.Count)))
	}
	if m.prefs.ShowTags && len(r.item.Tags) > 0 {
		sb.WriteString(tagStyle.Render(" (" + strings.Join(r.item.Tags, ", ") + ")"))
	}
	return sb.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	title := m.manifest
	if m.dirty {
		title += " *"
	}
	header := titleStyle.Render("holdall - " + title)

	var footer string
	switch {
	case m.searchMode:
		footer = "/" + m.searchInput.View()
	case m.reloading:
		footer = m.spin.View() + " reloading..."
	case m.statusMessage != "":
		footer = statusStyle.Render(" " + m.statusMessage + " ")
	case m.searchQuery != "":
		footer = fmt.Sprintf("filter: %q (%d hits, esc to clear)", m.searchQuery, len(m.rows))
	default:
		footer = helpStyle.Render("up/down move | enter fold | / search | d remove | s save | c copy | r reload | ? help | q quit")
	}

	if m.showHelp {
		return header + "\n" + helpText + "\n" + footer
	}
	return header + "\n" + m.viewport.View() + "\n" + footer
}

const helpText = `
  ↑/k, ↓/j     move the cursor
  enter/space  collapse or expand the current container
  /            filter rows by path substring
  esc          clear the filter
  d, then y    detach the current node (subtree goes with it)
  s            save the manifest
  c            copy the current node path to the clipboard
  r            reload the manifest from disk
  t            toggle tag display
  q            quit
`
