package ntree

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

const benchScale = 1000.0

func BenchmarkGoMap_Insert(b *testing.B) {
	var (
		points = getPoints(b.N, 3)
		m      = make(map[[3]int]int)
	)

	b.ResetTimer()

	// the same cells as an oct-tree of depth 5
	for i, p := range points {
		m[[3]int{int(p[0] / benchScale * 32), int(p[1] / benchScale * 32), int(p[2] / benchScale * 32)}] = i
	}
}

func BenchmarkOct_Insert(b *testing.B) {
	var (
		points  = getPoints(b.N, 3)
		tree, _ = NewOct[int](5, benchScale)
	)

	b.ResetTimer()

	for i, p := range points {
		_, _ = tree.Insert(i, p...)
	}
}

func BenchmarkOct_Find(b *testing.B) {
	var (
		points  = getPoints(b.N, 3)
		tree, _ = NewOct[int](5, benchScale)
	)

	for i, p := range points {
		_, _ = tree.Insert(i, p...)
	}

	b.ResetTimer()

	for _, p := range points {
		_, _, _ = tree.Find(p...)
	}
}

func BenchmarkQuad_Insert(b *testing.B) {
	var (
		points  = getPoints(b.N, 2)
		tree, _ = NewQuad[int](8, benchScale)
	)

	b.ResetTimer()

	for i, p := range points {
		_, _ = tree.Insert(i, p...)
	}
}

func BenchmarkHyper_Insert(b *testing.B) {
	var (
		points  = getPoints(b.N, MaxDims)
		tree, _ = New[int](MaxDims, 2, benchScale)
	)

	b.ResetTimer()

	for i, p := range points {
		_, _ = tree.Insert(i, p...)
	}
}

func BenchmarkOct_Leaves(b *testing.B) {
	var (
		points  = getPoints(10_000, 3)
		tree, _ = NewOct[int](5, benchScale)
	)

	for i, p := range points {
		_, _ = tree.Insert(i, p...)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tree.Leaves()
	}
}

func getPoints(num, dims int) [][]float64 {
	const seed = 1234567890

	var (
		faker  = gofakeit.New(seed)
		points = make([][]float64, num)
	)

	for i := range points {
		p := make([]float64, dims)
		for k := range p {
			p[k] = faker.Float64Range(0, benchScale)
		}
		points[i] = p
	}

	return points
}
