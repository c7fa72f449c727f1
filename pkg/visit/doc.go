// Package visit provides depth-first traversal, ancestry lookup, containment
// queries, and predicate-driven removal over any tree of nodes that expose an
// ordered child sequence. It is the structural core other packages build on:
// the node payload (its fields, serialization, display) stays entirely
// outside this package.
//
// A node type opts in by satisfying Container (read paths) or Editable
// (removal paths):
//
//	type Item struct{ kids []*Item }
//	func (it *Item) Children() []*Item      { return it.kids }
//	func (it *Item) SetChildren(ks []*Item) { it.kids = ks }
//
//	visit.Walk(root, func(it *Item) visit.Response {
//		if tooDeep(it) {
//			return visit.Skip
//		}
//		return visit.Next
//	})
//
// Every operation is synchronous and single-threaded and holds no state
// beyond the call stack. Parent and ancestor information is computed on
// demand by walking down from the root, never cached, so results always
// reflect the current tree shape. Read operations may run concurrently with
// each other but never with a removal on the same tree; callers sharing a
// tree across goroutines must serialize access. Visitor callbacks must not
// mutate the structure of the tree being walked.
package visit
