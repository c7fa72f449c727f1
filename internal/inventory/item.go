package inventory

import (
	"github.com/holdall/holdall/pkg/visit"
)

// Item is one node of a containment manifest: a thing that may hold other
// things. The nested Items sequence is ordered and that order is preserved
// by every operation in the tool.
type Item struct {
	Name  string   `yaml:"name" json:"name"`
	Kind  string   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Count int      `yaml:"count,omitempty" json:"count,omitempty"`
	Tags  []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Items []*Item  `yaml:"items,omitempty" json:"items,omitempty"`
}

// Children satisfies visit.Container.
func (it *Item) Children() []*Item { return it.Items }

// SetChildren satisfies visit.Editable.
func (it *Item) SetChildren(items []*Item) { it.Items = items }

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Units is the stack size of the item itself; an unset count means one unit.
func (it *Item) Units() int {
	if it.Count <= 0 {
		return 1
	}
	return it.Count
}

// InsertAt attaches child under parent at index i, clamping out-of-range
// indices to the end. Used to re-attach a node detached with visit.Remove.
func InsertAt(parent, child *Item, i int) {
	kids := parent.Items
	if i < 0 || i > len(kids) {
		i = len(kids)
	}
	kids = append(kids, nil)
	copy(kids[i+1:], kids[i:])
	kids[i] = child
	parent.Items = kids
}

// Stats summarizes a tree for banners and reports.
type Stats struct {
	Nodes    int // including the root
	MaxDepth int // root is depth 0
	Units    int // sum of stack sizes, root included
}

// Measure walks the tree once and returns its stats.
func Measure(root *Item) Stats {
	var st Stats
	depth := map[*Item]int{}
	visit.WalkWithParent(root, func(n, p *Item) visit.Response {
		d := 0
		if p != nil {
			d = depth[p] + 1
		}
		depth[n] = d
		if d > st.MaxDepth {
			st.MaxDepth = d
		}
		st.Nodes++
		st.Units += n.Units()
		return visit.Next
	})
	return st
}
