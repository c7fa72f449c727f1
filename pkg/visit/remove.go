package visit

// Unlimited removes every match when passed as the limit to RemoveFunc.
const Unlimited = -1

// RemoveFunc detaches descendants of root that satisfy pred, up to limit
// detachments, and returns them in the order found. Root itself is never
// tested. Matching follows the same depth-first pre-order as Walk; a matched
// node is detached whole, its own subtree intact and uninspected. A negative
// limit means unlimited; a limit of zero is a defined no-op.
//
// Detached units that a payload layer would coalesce (quantity-counted
// stacks, for example) come back as distinct entries; re-merging is the
// caller's concern.
func RemoveFunc[T Editable[T]](root T, pred func(T) bool, limit int) []T {
	var out []T
	if limit == 0 {
		return out
	}
	removeFrom(root, pred, &limit, &out)
	return out
}

// RemoveAllFunc is RemoveFunc without a detachment limit.
func RemoveAllFunc[T Editable[T]](root T, pred func(T) bool) []T {
	return RemoveFunc(root, pred, Unlimited)
}

// removeFrom splices matching children out of n by index so the walk stays
// valid across detachments: after a splice the same index already holds the
// next sibling.
func removeFrom[T Editable[T]](n T, pred func(T) bool, limit *int, out *[]T) {
	kids := n.Children()
	for i := 0; i < len(kids); {
		if *limit == 0 {
			return
		}
		child := kids[i]
		if pred(child) {
			kids = append(kids[:i], kids[i+1:]...)
			n.SetChildren(kids)
			*out = append(*out, child)
			if *limit > 0 {
				*limit--
			}
			continue
		}
		removeFrom(child, pred, limit, out)
		i++
	}
}

// Remove detaches target from its parent beneath root and returns it. The
// caller must have established containment beforehand (Contains is cheap);
// a target outside the tree is a programming error and panics.
func Remove[T Editable[T]](root, target T) T {
	parent, ok := Parent(root, target)
	if !ok {
		panic("visit: Remove target not contained in tree")
	}
	kids := parent.Children()
	for i, c := range kids {
		if c == target {
			parent.SetChildren(append(kids[:i], kids[i+1:]...))
			break
		}
	}
	return target
}
