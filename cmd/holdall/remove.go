package holdall

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdall/holdall/internal/audit"
	"github.com/holdall/holdall/internal/fingerprint"
	"github.com/holdall/holdall/internal/ignore"
	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/query"
	"github.com/holdall/holdall/pkg/visit"
)

var (
	flagRemovePath     string
	flagRemoveName     string
	flagRemoveKind     string
	flagRemoveTag      string
	flagRemoveMinCount int
	flagRemoveMaxCount int
	flagRemoveLeaf     bool
	flagRemoveLimit    int
	flagRemoveDryRun   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Detach nodes from the manifest",
		Long: "Remove detaches every node matching the filters, subtree and all, and rewrites the manifest. " +
			"Candidates are visited in discovery order; --limit caps how many are taken. " +
			"With --path exactly one node is detached. The root is never a candidate.",
		RunE: runRemove,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagRemovePath, "path", "", "remove the single node at this path")
	cmd.Flags().StringVar(&flagRemoveName, "name", "", "name glob (doublestar syntax)")
	cmd.Flags().StringVar(&flagRemoveKind, "kind", "", "exact kind")
	cmd.Flags().StringVar(&flagRemoveTag, "tag", "", "require this tag")
	cmd.Flags().IntVar(&flagRemoveMinCount, "min-count", 0, "minimum count")
	cmd.Flags().IntVar(&flagRemoveMaxCount, "max-count", 0, "maximum count (0 = unbounded)")
	cmd.Flags().BoolVar(&flagRemoveLeaf, "leaf", false, "match only nodes with no children")
	cmd.Flags().IntVar(&flagRemoveLimit, "limit", visit.Unlimited, "stop after this many removals (-1 = no limit)")
	cmd.Flags().BoolVar(&flagRemoveDryRun, "dry-run", false, "report what would be removed without touching the manifest")
}

func runRemove(cmd *cobra.Command, _ []string) error {
	root, manifest, lcfg, gcfg, err := loadTree()
	if err != nil {
		return err
	}

	filter := query.Filter{
		Name:     flagRemoveName,
		Kind:     flagRemoveKind,
		Tag:      flagRemoveTag,
		MinCount: flagRemoveMinCount,
		MaxCount: flagRemoveMaxCount,
		LeafOnly: flagRemoveLeaf,
	}
	if flagRemovePath == "" && filter.Empty() {
		return fmt.Errorf("refusing to remove everything: give --path or at least one filter")
	}
	if flagRemovePath != "" && !filter.Empty() {
		return fmt.Errorf("--path and filters are mutually exclusive")
	}

	// Node paths must be taken before detaching; afterwards the nodes are
	// no longer reachable from the root.
	paths := map[*inventory.Item]string{}
	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		if p == nil {
			paths[n] = n.Name
		} else {
			paths[n] = paths[p] + inventory.Sep + n.Name
		}
		return visit.Next
	})

	limit := resolveLimit(cmd.Flags().Changed("limit"), flagRemoveLimit, lcfg.Limit, gcfg.Limit)

	var removed []*inventory.Item
	if flagRemovePath != "" {
		node, ok := inventory.Resolve(root, flagRemovePath)
		if !ok {
			return fmt.Errorf("no node at %q in %s", flagRemovePath, manifest)
		}
		if node == root {
			return fmt.Errorf("the root cannot be removed")
		}
		if !flagRemoveDryRun {
			visit.Remove(root, node)
		}
		removed = []*inventory.Item{node}
	} else {
		ign := loadIgnore(manifest, lcfg, gcfg)
		pred := shielded(query.Compile(filter), blockedByIgnore(root, ign, paths))
		if flagRemoveDryRun {
			removed = dryRunCandidates(root, pred, limit)
		} else {
			removed = visit.RemoveFunc(root, pred, limit)
		}
	}

	removedPaths := make([]string, 0, len(removed))
	for _, n := range removed {
		removedPaths = append(removedPaths, paths[n])
	}

	if !flagRemoveDryRun && len(removed) > 0 {
		if err := inventory.Save(manifest, root); err != nil {
			return fmt.Errorf("save %s: %w", manifest, err)
		}
	}

	rec := audit.EditRecord{
		Timestamp:   time.Now().UTC(),
		Manifest:    manifest,
		Fingerprint: fingerprint.Sum(root),
		Removed:     removedPaths,
		Limit:       limit,
		DryRun:      flagRemoveDryRun,
	}
	if len(removedPaths) > 0 {
		if err := audit.NewLog(filepath.Dir(manifest)).Append(rec); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	verb := "removed"
	if flagRemoveDryRun {
		verb = "would remove"
	}
	if len(removedPaths) == 0 {
		fmt.Printf("nothing to remove in %s\n", manifest)
		return nil
	}
	for _, p := range removedPaths {
		fmt.Printf("%s %s\n", verb, p)
	}
	fmt.Printf("%d node(s) %s; fingerprint %s\n", len(removedPaths), verb, rec.Fingerprint)
	return nil
}

// dryRunCandidates visits the tree the way a removal would and collects the
// nodes a real run would take, without detaching anything. A match is not
// descended into, mirroring how removal takes the whole subtree.
func dryRunCandidates(root *inventory.Item, pred func(*inventory.Item) bool, limit int) []*inventory.Item {
	if limit == 0 {
		return nil
	}
	var out []*inventory.Item
	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		if p == nil {
			return visit.Next // the root is never a candidate
		}
		if !pred(n) {
			return visit.Next
		}
		out = append(out, n)
		if limit > 0 && len(out) == limit {
			return visit.Abort
		}
		return visit.Skip
	})
	return out
}

// resolveLimit applies CLI > local > global precedence for the removal cap.
// The flag's resting value is already "no limit", so config only applies when
// the flag was not given on the command line.
func resolveLimit(flagSet bool, cli int, local, global *int) int {
	if flagSet {
		return cli
	}
	if cfg := pickInt(0, local, global); cfg != 0 {
		return cfg
	}
	return cli
}

// blockedByIgnore marks every node inside an ignored subtree. A pattern hit
// protects the node and everything beneath it, the same pruning find applies.
func blockedByIgnore(root *inventory.Item, ign ignore.Matcher, paths map[*inventory.Item]string) map[*inventory.Item]bool {
	blocked := map[*inventory.Item]bool{}
	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		if p != nil && blocked[p] {
			blocked[n] = true
			return visit.Next
		}
		if ign.Match(paths[n]) {
			blocked[n] = true
		}
		return visit.Next
	})
	return blocked
}

// shielded wraps a removal predicate so blocked nodes never match.
func shielded(pred func(*inventory.Item) bool, blocked map[*inventory.Item]bool) func(*inventory.Item) bool {
	return func(n *inventory.Item) bool {
		return !blocked[n] && pred(n)
	}
}
