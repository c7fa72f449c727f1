// Package lint checks manifests for shapes that confuse path addressing and
// removal: nameless nodes, duplicate sibling names, slashes in names, bogus
// counts, and pathological nesting depth.
package lint

import (
	"fmt"
	"strings"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

// MaxDepth is the nesting depth past which a manifest draws a warning.
const MaxDepth = 32

// Issue is one problem found in a manifest.
type Issue struct {
	Path   string `json:"path"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Path, i.Detail, i.Rule)
}

// Check walks the tree once and reports every issue found, in depth-first
// order.
func Check(root *inventory.Item) []Issue {
	var issues []Issue
	depth := map[*inventory.Item]int{}
	paths := map[*inventory.Item]string{}

	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		d := 0
		path := n.Name
		if p != nil {
			d = depth[p] + 1
			path = paths[p] + inventory.Sep + n.Name
		}
		depth[n] = d
		paths[n] = path

		if strings.TrimSpace(n.Name) == "" {
			issues = append(issues, Issue{Path: path, Rule: "empty-name", Detail: "node has no name"})
		}
		if strings.Contains(n.Name, inventory.Sep) {
			issues = append(issues, Issue{Path: path, Rule: "name-has-separator", Detail: "node name contains '/'"})
		}
		if n.Count < 0 {
			issues = append(issues, Issue{Path: path, Rule: "negative-count", Detail: fmt.Sprintf("count is %d", n.Count)})
		}
		if d == MaxDepth {
			issues = append(issues, Issue{Path: path, Rule: "deep-nesting", Detail: fmt.Sprintf("nested deeper than %d levels", MaxDepth)})
		}

		seen := map[string]bool{}
		for _, child := range n.Items {
			if child.Name == "" {
				continue // reported as empty-name when visited
			}
			if seen[child.Name] {
				issues = append(issues, Issue{
					Path:   path + inventory.Sep + child.Name,
					Rule:   "duplicate-sibling",
					Detail: "sibling names collide; path addressing picks the first",
				})
			}
			seen[child.Name] = true
		}
		return visit.Next
	})
	return issues
}
