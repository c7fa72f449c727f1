// Package query compiles CLI filter flags into node predicates for the
// traversal and removal operations.
package query

import (
	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/holdall/holdall/internal/inventory"
)

// Filter describes the node attributes a find or remove operation selects
// on. Zero-valued fields do not constrain; set fields are ANDed.
type Filter struct {
	Name     string // doublestar glob matched against the node name
	Kind     string
	Tag      string
	MinCount int
	MaxCount int // 0 = unbounded
	LeafOnly bool
}

// Empty reports whether the filter constrains nothing.
func (f Filter) Empty() bool {
	return f.Name == "" && f.Kind == "" && f.Tag == "" &&
		f.MinCount == 0 && f.MaxCount == 0 && !f.LeafOnly
}

// Compile turns the filter into a predicate suitable for visit.ContainsFunc
// and visit.RemoveFunc. An invalid name glob degrades to a literal match.
func Compile(f Filter) func(*inventory.Item) bool {
	return func(it *inventory.Item) bool {
		if f.Name != "" && !matchGlob(f.Name, it.Name) {
			return false
		}
		if f.Kind != "" && it.Kind != f.Kind {
			return false
		}
		if f.Tag != "" && !it.HasTag(f.Tag) {
			return false
		}
		if f.MinCount > 0 && it.Units() < f.MinCount {
			return false
		}
		if f.MaxCount > 0 && it.Units() > f.MaxCount {
			return false
		}
		if f.LeafOnly && len(it.Items) > 0 {
			return false
		}
		return true
	}
}

func matchGlob(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		return pattern == name
	}
	return ok
}
