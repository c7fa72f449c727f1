package holdall

import (
	"github.com/holdall/holdall/internal/fingerprint"
	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/internal/query"
	"github.com/holdall/holdall/pkg/visit"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Item = inventory.Item
type Filter = query.Filter
type Stats = inventory.Stats

// Load reads a manifest file and returns its tree.
func Load(path string) (*Item, error) { return inventory.Load(path) }

// Parse decodes manifest YAML bytes into a tree.
func Parse(b []byte) (*Item, error) { return inventory.Parse(b) }

// Save writes the tree back to a manifest file.
func Save(path string, root *Item) error { return inventory.Save(path, root) }

// Resolve finds the node at a slash-separated path, glob segments allowed.
func Resolve(root *Item, path string) (*Item, bool) { return inventory.Resolve(root, path) }

// Path returns the slash-separated path of a node contained in the tree.
func Path(root, target *Item) (string, bool) { return inventory.Path(root, target) }

// Find returns every node matching the filter, in discovery order.
func Find(root *Item, f Filter) []*Item {
	pred := query.Compile(f)
	var out []*Item
	visit.Walk(root, func(n *Item) visit.Response {
		if pred(n) {
			out = append(out, n)
		}
		return visit.Next
	})
	return out
}

// Remove detaches up to limit nodes matching the filter and returns them.
// The root is never a candidate. Pass visit.Unlimited for no cap.
func Remove(root *Item, f Filter, limit int) []*Item {
	return visit.RemoveFunc(root, query.Compile(f), limit)
}

// Fingerprint returns the stable digest of the tree's structure.
func Fingerprint(root *Item) string { return fingerprint.Sum(root) }

// Measure returns node count, maximum depth and total units for the tree.
func Measure(root *Item) Stats { return inventory.Measure(root) }
