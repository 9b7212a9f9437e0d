package ntree

import "math"

// roundHalfUp maps a normalized coordinate to its binary digit: 0.5 rounds to 1.
func roundHalfUp(c float64) int {
	return int(math.Floor(c + 0.5))
}

// compositeIndex takes one digit from every normalized coordinate, returns the
// child slot they select and shifts the coordinates to the next level in place.
func compositeIndex(norm []float64) int {
	var j int

	for k, c := range norm {
		bit := roundHalfUp(c)
		j |= bit << k
		norm[k] = 2*c - float64(bit)
	}

	return j
}

// cellPath returns one composite index per level for a normalized vector.
// The vector is consumed.
func cellPath(norm []float64, depth int) []int {
	path := make([]int, depth)

	for i := range path {
		path[i] = compositeIndex(norm)
	}

	return path
}

// slotBits splits a composite index back into per-axis digits.
func slotBits(j, dims int) []int {
	bits := make([]int, dims)

	for k := range bits {
		bits[k] = (j >> k) & 1
	}

	return bits
}
