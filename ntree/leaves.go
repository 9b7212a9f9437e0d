package ntree

// Leaves returns every node holding a payload, depth-first with the children
// of a node visited in ascending composite index order.
func (t *Tree[T]) Leaves() []Handle {
	leaves := make([]Handle, 0, t.leaves)

	return t.collect(0, leaves)
}

func (t *Tree[T]) collect(h Handle, leaves []Handle) []Handle {
	n := &t.nodes[h]

	switch n.kind {
	case KindLeaf:
		return append(leaves, h)
	case KindInternal:
		n.children.each(func(_ int, child Handle) bool {
			leaves = t.collect(child, leaves)
			return true
		})
	}

	return leaves
}

// EachLeaf calls fn for every leaf in the order of Leaves until fn returns false.
// The tree must not be modified from fn.
func (t *Tree[T]) EachLeaf(fn func(h Handle, payload T) bool) {
	t.Walk(func(h Handle) bool {
		if n := &t.nodes[h]; n.kind == KindLeaf {
			return fn(h, n.payload)
		}
		return true
	})
}

// Walk visits every materialized node in pre-order until fn returns false.
// The tree must not be modified from fn.
func (t *Tree[T]) Walk(fn func(h Handle) bool) {
	t.walk(0, fn)
}

func (t *Tree[T]) walk(h Handle, fn func(h Handle) bool) bool {
	if !fn(h) {
		return false
	}

	return t.nodes[h].children.each(func(_ int, child Handle) bool {
		return t.walk(child, fn)
	})
}
