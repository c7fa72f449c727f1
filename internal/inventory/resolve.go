package inventory

import (
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/holdall/holdall/pkg/visit"
)

// Sep separates node names in a materialized path.
const Sep = "/"

// Resolve returns the node addressed by a slash-separated path of name
// patterns, matched against children in order. The first segment addresses
// the root itself and may be omitted. Segments are doublestar globs, so
// "pack/*/flint" works; an invalid pattern falls back to a literal name
// match. The first matching child wins at each level.
func Resolve(root *Item, path string) (*Item, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return root, true
	}
	if matchName(segs[0], root.Name) {
		segs = segs[1:]
	}
	cur := root
	for _, seg := range segs {
		var next *Item
		for _, child := range cur.Items {
			if matchName(seg, child.Name) {
				next = child
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Path returns the materialized slash path of target beneath root, root's
// name first. ok is false when target is not in the tree. Computed from the
// ancestor chain on demand; never cached.
func Path(root, target *Item) (string, bool) {
	if target == root {
		return root.Name, true
	}
	chain := visit.Ancestors(root, target)
	if len(chain) == 0 {
		return "", false
	}
	segs := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		segs = append(segs, chain[i].Name)
	}
	segs = append(segs, target.Name)
	return strings.Join(segs, Sep), true
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, Sep) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func matchName(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		return pattern == name
	}
	return ok
}
