package ntree

import (
	"strconv"
	"strings"
)

// Vector is an ordered set of coordinates bound to a number of dimensions.
type Vector struct {
	coords []float64
}

// NewVector returns a vector of exactly dims coordinates. The coordinates are copied.
func NewVector(dims int, coords ...float64) (Vector, error) {
	if len(coords) != dims {
		return Vector{}, &DimensionError{Want: dims, Got: len(coords)}
	}

	return Vector{coords: append([]float64(nil), coords...)}, nil
}

func (v Vector) Dims() int {
	return len(v.coords)
}

func (v Vector) Coord(k int) float64 {
	return v.coords[k]
}

// Coords returns a copy of the coordinates.
func (v Vector) Coords() []float64 {
	return append([]float64(nil), v.coords...)
}

func (v Vector) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for k, c := range v.coords {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}

// normalize divides every coordinate by scale and checks it lands in [0, 1].
// NaN is rejected too.
func (v Vector) normalize(scale float64) ([]float64, error) {
	norm := make([]float64, len(v.coords))

	for k, c := range v.coords {
		n := c / scale
		if !(n >= 0 && n <= 1) {
			return nil, &RangeError{Axis: k, Value: c, Scale: scale}
		}
		norm[k] = n
	}

	return norm, nil
}
