package visit

// Parent returns the immediate parent of target beneath root. ok is false
// when target is root itself or not reachable from root. The parent is found
// by walking down from root, so the result reflects the tree as it is now
// and goes stale only if the caller keeps it across a later mutation.
func Parent[T Container[T]](root, target T) (parent T, ok bool) {
	var zero T
	WalkWithParent(root, func(n, p T) Response {
		if n == target && p != zero {
			parent, ok = p, true
			return Abort
		}
		return Next
	})
	return parent, ok
}

// Ancestors returns the chain of containers holding target, innermost first,
// ending with root. Empty when target is root or not reachable. Each step
// re-walks from the root, so cost is O(depth * size); acceptable for the
// shallow nesting this package is built for, but callers doing frequent
// ancestry queries should not lean on it.
func Ancestors[T Container[T]](root, target T) []T {
	var out []T
	for cur := target; ; {
		p, ok := Parent(root, cur)
		if !ok {
			return out
		}
		out = append(out, p)
		cur = p
	}
}

// Contains reports whether target is root itself or reachable from root
// through child edges at any depth. Identity comparison, not equality.
func Contains[T Container[T]](root, target T) bool {
	return ContainsFunc(root, func(n T) bool { return n == target })
}

// ContainsFunc reports whether any node at or beneath root, root included,
// satisfies pred. The walk stops at the first match.
func ContainsFunc[T Container[T]](root T, pred func(T) bool) bool {
	return Walk(root, func(n T) Response {
		if pred(n) {
			return Abort
		}
		return Next
	}) == Abort
}
