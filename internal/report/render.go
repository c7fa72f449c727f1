package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/holdall/holdall/internal/inventory"
)

// Options control rendering for the tree and table views.
type Options struct {
	NoColor  bool
	MaxDepth int // 0 = unlimited; counted from the root's children
}

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintTree writes a box-drawing rendering of the tree, one node per line.
func PrintTree(w io.Writer, root *inventory.Item, opts Options) {
	fmt.Fprintln(w, label(root, opts))
	printChildren(w, root, "", 1, opts)
}

func printChildren(w io.Writer, n *inventory.Item, prefix string, depth int, opts Options) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}
	kids := n.Items
	for i, child := range kids {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(kids)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintln(w, prefix+connector+label(child, opts))
		printChildren(w, child, childPrefix, depth+1, opts)
	}
}

func label(n *inventory.Item, opts Options) string {
	var sb strings.Builder
	if opts.NoColor {
		sb.WriteString(n.Name)
	} else {
		sb.WriteString(nameStyle.Render(n.Name))
	}
	if n.Kind != "" {
		s := " [" + n.Kind + "]"
		if !opts.NoColor {
			s = kindStyle.Render(s)
		}
		sb.WriteString(s)
	}
	if n.Count > 1 {
		s := " x" + strconv.Itoa(n.Count)
		if !opts.NoColor {
			s = countStyle.Render(s)
		}
		sb.WriteString(s)
	}
	if len(n.Tags) > 0 {
		s := " (" + strings.Join(n.Tags, ", ") + ")"
		if !opts.NoColor {
			s = tagStyle.Render(s)
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// PrintMatches writes matched nodes as a bordered table with their
// materialized paths, followed by a summary line.
func PrintMatches(w io.Writer, root *inventory.Item, matches []*inventory.Item, opts Options) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matching items")
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("PATH", "KIND", "COUNT", "TAGS")
	for _, m := range matches {
		path, ok := inventory.Path(root, m)
		if !ok {
			// already detached; show the bare name
			path = m.Name
		}
		_ = table.Append([]string{path, m.Kind, strconv.Itoa(m.Units()), strings.Join(m.Tags, ", ")})
	}
	_ = table.Render()
	fmt.Fprintf(w, "\nMatches: %d\n", len(matches))
}

// PrintStats writes the one-line summary used under tree output.
func PrintStats(w io.Writer, st inventory.Stats, fingerprint string) {
	fmt.Fprintf(w, "\nItems: %d (depth: %d, units: %d)\n", st.Nodes, st.MaxDepth, st.Units)
	if fingerprint != "" {
		fmt.Fprintf(w, "Fingerprint: %s\n", fingerprint)
	}
}
