package ntree

// Tree is a D-dimensional subdivision tree mapping cells to payloads of type T.
type Tree[T any] struct {
	cfg    Config
	nodes  []node[T] // the root is always nodes[0]
	leaves int
}

// New returns an empty tree of the given dimensions, depth and coordinate scale.
func New[T any](dims, depth int, scale float64) (*Tree[T], error) {
	return NewWithConfig[T](Config{Dims: dims, Depth: depth, Scale: scale})
}

func NewWithConfig[T any](cfg Config) (*Tree[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Tree[T]{
		cfg:   cfg,
		nodes: make([]node[T], 1, 1+cfg.Fanout()),
	}
	t.nodes[0] = node[T]{kind: KindInternal, parent: NoHandle}

	return t, nil
}

// NewQuad returns a two-dimensional tree.
func NewQuad[T any](depth int, scale float64) (*Tree[T], error) {
	return New[T](2, depth, scale)
}

// NewOct returns a three-dimensional tree. Its children use the same composite
// index as any other tree: x weighs 1, y weighs 2, z weighs 4.
func NewOct[T any](depth int, scale float64) (*Tree[T], error) {
	return New[T](3, depth, scale)
}

func (t *Tree[T]) Config() Config {
	return t.cfg
}

func (t *Tree[T]) Dims() int {
	return t.cfg.Dims
}

func (t *Tree[T]) Depth() int {
	return t.cfg.Depth
}

func (t *Tree[T]) Scale() float64 {
	return t.cfg.Scale
}

// MaxNodeCount returns 2^(dims*depth), the bound on the number of bottom-level cells.
func (t *Tree[T]) MaxNodeCount() uint64 {
	return t.cfg.MaxNodeCount()
}

// NodeCount returns the number of materialized nodes, the root included.
func (t *Tree[T]) NodeCount() int {
	return len(t.nodes)
}

// LeafCount returns the number of nodes holding a payload.
func (t *Tree[T]) LeafCount() int {
	return t.leaves
}

// Root returns the handle of the root node.
func (t *Tree[T]) Root() Handle {
	return 0
}

// Vector returns a coordinate vector bound to the tree dimensions.
func (t *Tree[T]) Vector(coords ...float64) (Vector, error) {
	return NewVector(t.cfg.Dims, coords...)
}

// Insert stores the payload in the cell containing the coordinates, replacing
// any previous payload of that cell, and returns the leaf.
func (t *Tree[T]) Insert(payload T, coords ...float64) (Handle, error) {
	vec, err := t.Vector(coords...)
	if err != nil {
		return NoHandle, err
	}

	return t.InsertVector(vec, payload)
}

func (t *Tree[T]) InsertVector(vec Vector, payload T) (Handle, error) {
	h, err := t.LookupVector(vec)
	if err != nil {
		return NoHandle, err
	}

	leaf := &t.nodes[h]
	if leaf.kind != KindLeaf {
		leaf.kind = KindLeaf
		t.leaves++
	}
	leaf.payload = payload

	return h, nil
}

// Lookup returns the bottom-level cell containing the coordinates. Missing
// branches are grown on the way down; a new cell is left without a payload.
func (t *Tree[T]) Lookup(coords ...float64) (Handle, error) {
	vec, err := t.Vector(coords...)
	if err != nil {
		return NoHandle, err
	}

	return t.LookupVector(vec)
}

func (t *Tree[T]) LookupVector(vec Vector) (Handle, error) {
	path, err := t.locate(vec)
	if err != nil {
		return NoHandle, err
	}

	return t.grow(path), nil
}

// Find is Lookup without growing: it reports false if the cell does not exist yet.
func (t *Tree[T]) Find(coords ...float64) (Handle, bool, error) {
	vec, err := t.Vector(coords...)
	if err != nil {
		return NoHandle, false, err
	}

	path, err := t.locate(vec)
	if err != nil {
		return NoHandle, false, err
	}

	var cur Handle

	for _, j := range path {
		next, ok := t.nodes[cur].children.get(j)
		if !ok {
			return NoHandle, false, nil
		}
		cur = next
	}

	return cur, true, nil
}

// Locate returns the composite index of the cell containing the coordinates
// at every level. The tree is not touched.
func (t *Tree[T]) Locate(coords ...float64) ([]int, error) {
	vec, err := t.Vector(coords...)
	if err != nil {
		return nil, err
	}

	return t.locate(vec)
}

func (t *Tree[T]) locate(vec Vector) ([]int, error) {
	if vec.Dims() != t.cfg.Dims {
		return nil, &DimensionError{Want: t.cfg.Dims, Got: vec.Dims()}
	}

	norm, err := vec.normalize(t.cfg.Scale)
	if err != nil {
		return nil, err
	}

	return cellPath(norm, t.cfg.Depth), nil
}

// grow walks the path creating missing nodes and returns the last one.
func (t *Tree[T]) grow(path []int) Handle {
	var (
		cur    Handle
		size   = t.cfg.Fanout()
		bottom = len(path)
	)

	for i, j := range path {
		next, ok := t.nodes[cur].children.get(j)
		if !ok {
			kind := KindInternal
			if i+1 == bottom {
				kind = KindEmpty
			}

			next = Handle(len(t.nodes))
			t.nodes = append(t.nodes, node[T]{
				kind:   kind,
				depth:  i + 1,
				slot:   j,
				parent: cur,
			})
			t.nodes[cur].children.put(j, size, next)
		}
		cur = next
	}

	return cur
}
