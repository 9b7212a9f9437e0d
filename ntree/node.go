package ntree

// Handle addresses a node in the arena of its Tree.
type Handle int32

// NoHandle is returned where there is no node (the parent of the root, failed lookups).
const NoHandle Handle = -1

// Kind tells what a node holds.
type Kind uint8

const (
	KindInternal Kind = iota // has children
	KindEmpty                // bottom-level cell without a payload
	KindLeaf                 // bottom-level cell with a payload
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindEmpty:
		return "empty"
	case KindLeaf:
		return "leaf"
	}

	return "unknown"
}

type node[T any] struct {
	kind     Kind
	depth    int
	slot     int    // composite index within the parent
	parent   Handle // NoHandle for the root
	children fanout // internal nodes only
	payload  T      // leaves only
}

func (t *Tree[T]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.nodes)
}

// Kind returns the kind of the node.
func (t *Tree[T]) Kind(h Handle) (Kind, error) {
	if !t.valid(h) {
		return 0, ErrInvalidHandle
	}
	return t.nodes[h].kind, nil
}

// IsLeaf reports whether the node holds a payload.
func (t *Tree[T]) IsLeaf(h Handle) bool {
	return t.valid(h) && t.nodes[h].kind == KindLeaf
}

// IsRoot reports whether the node is the first branch of the tree.
func (t *Tree[T]) IsRoot(h Handle) bool {
	return t.valid(h) && t.nodes[h].parent == NoHandle
}

// Parent returns the parent of the node; false for the root and invalid handles.
func (t *Tree[T]) Parent(h Handle) (Handle, bool) {
	if !t.valid(h) || t.nodes[h].parent == NoHandle {
		return NoHandle, false
	}
	return t.nodes[h].parent, true
}

// NodeDepth returns the distance of the node from the root, -1 for invalid handles.
func (t *Tree[T]) NodeDepth(h Handle) int {
	if !t.valid(h) {
		return -1
	}
	return t.nodes[h].depth
}

// Slot returns the composite index of the node within its parent, -1 for the root.
func (t *Tree[T]) Slot(h Handle) int {
	if !t.valid(h) || t.nodes[h].parent == NoHandle {
		return -1
	}
	return t.nodes[h].slot
}

// Children returns the existing children in ascending composite index order.
func (t *Tree[T]) Children(h Handle) []Handle {
	if !t.valid(h) {
		return nil
	}

	var (
		table    = &t.nodes[h].children
		children = make([]Handle, 0, table.len())
	)

	table.each(func(_ int, child Handle) bool {
		children = append(children, child)
		return true
	})

	return children
}

// Payload returns the payload of a leaf.
func (t *Tree[T]) Payload(h Handle) (T, bool) {
	if !t.IsLeaf(h) {
		var zero T
		return zero, false
	}
	return t.nodes[h].payload, true
}

// Path returns the composite indices leading from the root to the node.
func (t *Tree[T]) Path(h Handle) []int {
	if !t.valid(h) {
		return nil
	}

	path := make([]int, t.nodes[h].depth)

	for cur := h; t.nodes[cur].parent != NoHandle; cur = t.nodes[cur].parent {
		path[t.nodes[cur].depth-1] = t.nodes[cur].slot
	}

	return path
}

// Bounds returns the cell covered by the node in tree coordinates: [lo, hi)
// per axis, closed at the upper edge of the domain.
func (t *Tree[T]) Bounds(h Handle) (lo, hi []float64, err error) {
	if !t.valid(h) {
		return nil, nil, ErrInvalidHandle
	}

	var (
		dims = t.cfg.Dims
		size = 1.0
	)

	lo = make([]float64, dims)
	hi = make([]float64, dims)

	for _, j := range t.Path(h) {
		size /= 2
		for k, bit := range slotBits(j, dims) {
			lo[k] += float64(bit) * size
		}
	}

	for k := range lo {
		hi[k] = (lo[k] + size) * t.cfg.Scale
		lo[k] *= t.cfg.Scale
	}

	return lo, hi, nil
}
