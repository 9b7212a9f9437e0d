package ntree

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaves_Empty(t *testing.T) {
	t.Parallel()

	tree, err := NewOct[int](2, 1)
	require.NoError(t, err)

	assert.Empty(t, tree.Leaves())

	// cells grown by Lookup are not leaves
	_, err = tree.Lookup(0.5, 0.5, 0.5)
	require.NoError(t, err)

	assert.Empty(t, tree.Leaves())
	assert.Equal(t, 3, tree.NodeCount())
}

func TestLeaves_Order(t *testing.T) {
	t.Parallel()

	tree, err := NewQuad[string](2, 1)
	require.NoError(t, err)

	// level 1 cells: 0:(lo,lo) 1:(hi,lo) 2:(lo,hi) 3:(hi,hi)
	for _, tcase := range []*struct {
		Val  string
		X, Y float64
	}{
		{"3.0", 0.6, 0.6},
		{"0.3", 0.4, 0.4},
		{"1.2", 0.6, 0.4},
		{"0.0", 0.1, 0.1},
		{"2.1", 0.3, 0.6},
		{"0.1", 0.3, 0.1},
	} {
		_, err := tree.Insert(tcase.Val, tcase.X, tcase.Y)
		require.NoError(t, err)
	}

	var vals []string

	for _, h := range tree.Leaves() {
		val, ok := tree.Payload(h)

		require.True(t, ok)
		vals = append(vals, val)
	}

	assert.Equal(t, []string{"0.0", "0.1", "0.3", "1.2", "2.1", "3.0"}, vals)
}

func TestLeaves_Repeatable(t *testing.T) {
	t.Parallel()

	tree, err := NewQuad[int](3, 1)
	require.NoError(t, err)

	for i, c := range []float64{0.9, 0.1, 0.5, 0.3} {
		_, err := tree.Insert(i, c, 1-c)
		require.NoError(t, err)
	}

	first := tree.Leaves()

	assert.Len(t, first, 4)
	assert.Equal(t, first, tree.Leaves())
}

func TestEachLeaf(t *testing.T) {
	t.Parallel()

	tree, err := NewQuad[int](1, 1)
	require.NoError(t, err)

	for i, xy := range [][2]float64{{0.9, 0.9}, {0.1, 0.1}, {0.9, 0.1}} {
		_, err := tree.Insert(i, xy[0], xy[1])
		require.NoError(t, err)
	}

	var (
		handles  []Handle
		payloads []int
	)

	tree.EachLeaf(func(h Handle, payload int) bool {
		handles = append(handles, h)
		payloads = append(payloads, payload)
		return true
	})

	assert.Equal(t, tree.Leaves(), handles)
	assert.Equal(t, []int{1, 2, 0}, payloads)

	// stop early
	payloads = payloads[:0]
	tree.EachLeaf(func(_ Handle, payload int) bool {
		payloads = append(payloads, payload)
		return false
	})

	assert.Equal(t, []int{1}, payloads)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	tree, err := NewQuad[int](2, 1)
	require.NoError(t, err)

	_, err = tree.Insert(1, 0.9, 0.9)
	require.NoError(t, err)
	_, err = tree.Insert(2, 0.1, 0.1)
	require.NoError(t, err)

	var (
		depths []int
		slots  []int
	)

	tree.Walk(func(h Handle) bool {
		depths = append(depths, tree.NodeDepth(h))
		slots = append(slots, tree.Slot(h))
		return true
	})

	assert.Equal(t, []int{0, 1, 2, 1, 2}, depths)
	assert.Equal(t, []int{-1, 0, 0, 3, 3}, slots)

	var visited int

	tree.Walk(func(h Handle) bool {
		visited++
		return tree.NodeDepth(h) < 2
	})

	assert.Equal(t, 3, visited)
}

func TestLeaves_DistinctCells(t *testing.T) {
	t.Parallel()

	const (
		total = 5000
		seed  = 987654321
	)

	tree, err := New[int](4, 2, 1)
	require.NoError(t, err)

	var (
		fake  = gofakeit.New(seed)
		cells = map[[2]int]struct{}{}
	)

	for i := 0; i < total; i++ {
		coords := make([]float64, 4)
		for k := range coords {
			coords[k] = fake.Float64Range(0, 1)
		}

		path, err := tree.Locate(coords...)
		require.NoError(t, err)

		_, err = tree.Insert(i, coords...)
		require.NoError(t, err)

		cells[[2]int{path[0], path[1]}] = struct{}{}
	}

	leaves := tree.Leaves()

	require.Len(t, leaves, len(cells))

	// ascending composite index order, depth-first
	prev := -1
	for _, h := range leaves {
		path := tree.Path(h)
		key := path[0]<<4 | path[1]

		assert.Greater(t, key, prev)
		prev = key
	}
}
