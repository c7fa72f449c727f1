package visit

// Response is returned by a visitor to control how the walk proceeds.
type Response int

const (
	// Next descends into the current node's children, then continues with
	// the next sibling.
	Next Response = iota
	// Skip leaves the current node's children unvisited and continues with
	// the next sibling.
	Skip
	// Abort stops the walk entirely, including unvisited siblings in every
	// ancestor frame.
	Abort
)

func (r Response) String() string {
	switch r {
	case Next:
		return "next"
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	}
	return "invalid"
}

// Container is the minimal capability a node type must provide for the read
// paths: identity comparison and an ordered child sequence. Child order is
// meaningful and preserved by every operation in this package.
type Container[T any] interface {
	comparable
	Children() []T
}

// Editable extends Container with write access to the child sequence. Only
// the removal operations require it.
type Editable[T any] interface {
	Container[T]
	SetChildren([]T)
}

// Walk visits root and every node beneath it in depth-first pre-order: a
// node first, then each child's full subtree in sequence order. fn's
// Response controls descent per node; Skip never escapes the walk, so Walk
// itself returns only Next or Abort.
func Walk[T Container[T]](root T, fn func(node T) Response) Response {
	return WalkWithParent(root, func(node, _ T) Response { return fn(node) })
}

// WalkWithParent is Walk with the immediate parent supplied alongside each
// node. The root is visited with the zero value of T as its parent.
func WalkWithParent[T Container[T]](root T, fn func(node, parent T) Response) Response {
	var zero T
	return walk(root, zero, fn)
}

func walk[T Container[T]](node, parent T, fn func(node, parent T) Response) Response {
	switch fn(node, parent) {
	case Abort:
		return Abort
	case Skip:
		return Next
	}
	for _, child := range node.Children() {
		if walk(child, node, fn) == Abort {
			return Abort
		}
	}
	return Next
}
