package ntree

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch = errors.New("coordinate count does not match the tree dimensions")
	ErrOutOfRange        = errors.New("coordinate is outside of the tree domain")
	ErrInvalidConfig     = errors.New("invalid tree config")
	ErrInvalidHandle     = errors.New("handle does not refer to a node of the tree")
)

// DimensionError reports a coordinate vector of the wrong length.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v (want %d, got %d)", ErrDimensionMismatch, e.Want, e.Got)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// RangeError reports the first axis whose coordinate falls outside [0, Scale].
type RangeError struct {
	Axis  int
	Value float64
	Scale float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: axis %d value %g not in [0, %g]", ErrOutOfRange, e.Axis, e.Value, e.Scale)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
