package holdall

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/ignore"
	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/query"
	"github.com/holdall/holdall/internal/report"
	"github.com/holdall/holdall/pkg/visit"
)

var (
	flagFindName     string
	flagFindKind     string
	flagFindTag      string
	flagFindMinCount int
	flagFindMaxCount int
	flagFindLeaf     bool
	flagFindCount    bool
	flagFindQuiet    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search the tree for nodes matching filters",
		Long:  "Find walks the manifest and reports every node matching the given filters, in discovery order. Subtrees matched by the ignore file are skipped whole.",
		RunE:  runFind,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagFindName, "name", "", "name glob (doublestar syntax)")
	cmd.Flags().StringVar(&flagFindKind, "kind", "", "exact kind")
	cmd.Flags().StringVar(&flagFindTag, "tag", "", "require this tag")
	cmd.Flags().IntVar(&flagFindMinCount, "min-count", 0, "minimum count")
	cmd.Flags().IntVar(&flagFindMaxCount, "max-count", 0, "maximum count (0 = unbounded)")
	cmd.Flags().BoolVar(&flagFindLeaf, "leaf", false, "match only nodes with no children")
	cmd.Flags().BoolVar(&flagFindCount, "count", false, "print only the number of matches")
	cmd.Flags().BoolVarP(&flagFindQuiet, "quiet", "q", false, "no output; exit 0 if any node matches, 1 otherwise")
}

type matchRow struct {
	Path  string   `json:"path"`
	Kind  string   `json:"kind,omitempty"`
	Count int      `json:"count,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

func runFind(_ *cobra.Command, _ []string) error {
	root, manifest, lcfg, gcfg, err := loadTree()
	if err != nil {
		return err
	}

	filter := query.Filter{
		Name:     flagFindName,
		Kind:     flagFindKind,
		Tag:      flagFindTag,
		MinCount: flagFindMinCount,
		MaxCount: flagFindMaxCount,
		LeafOnly: flagFindLeaf,
	}
	pred := query.Compile(filter)
	ign := loadIgnore(manifest, lcfg, gcfg)

	// The cheap path: existence only, stop at the first hit.
	if flagFindQuiet {
		if !anyMatch(root, ign, pred) {
			os.Exit(1)
		}
		return nil
	}

	var matches []*inventory.Item
	paths := map[*inventory.Item]string{}
	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		path := n.Name
		if p != nil {
			path = paths[p] + inventory.Sep + n.Name
		}
		paths[n] = path
		if ign.Match(path) {
			return visit.Skip
		}
		if pred(n) {
			matches = append(matches, n)
		}
		return visit.Next
	})

	switch {
	case flagFindCount:
		fmt.Println(len(matches))
	case flagJSON:
		rows := make([]matchRow, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, matchRow{Path: paths[m], Kind: m.Kind, Count: m.Count, Tags: m.Tags})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		color := colorEnabled(flagNoColor, lcfg.NoColor, gcfg.NoColor)
		report.PrintMatches(os.Stdout, root, matches, report.Options{NoColor: !color})
	}
	return nil
}

// anyMatch reports whether any non-ignored node satisfies pred, pruning
// ignored subtrees the same way the listing walk does and stopping at the
// first hit.
func anyMatch(root *inventory.Item, ign ignore.Matcher, pred func(*inventory.Item) bool) bool {
	paths := map[*inventory.Item]string{}
	return visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		path := n.Name
		if p != nil {
			path = paths[p] + inventory.Sep + n.Name
		}
		paths[n] = path
		if ign.Match(path) {
			return visit.Skip
		}
		if pred(n) {
			return visit.Abort
		}
		return visit.Next
	}) == visit.Abort
}
