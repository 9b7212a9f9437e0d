package ntree

import (
	"fmt"
	"math"
)

const (
	MaxDims         = 12 // a child table bitmap of 2^12 bits is 64 words
	MaxDepth        = 16
	MaxCapacityBits = 63 // 2^(dims*depth) must fit an uint64
)

// Config holds the fixed shape of a Tree.
type Config struct {
	Dims  int
	Depth int
	Scale float64
}

// DefaultConfig returns a config of the given dimensions with depth 1 and scale 1.
func DefaultConfig(dims int) Config {
	return Config{
		Dims:  dims,
		Depth: 1,
		Scale: 1,
	}
}

// Validate checks the config. Values are never clamped.
func (cfg Config) Validate() error {
	switch {
	case cfg.Dims < 1 || cfg.Dims > MaxDims:
		return fmt.Errorf("%w: dims %d not in [1, %d]", ErrInvalidConfig, cfg.Dims, MaxDims)
	case cfg.Depth < 1 || cfg.Depth > MaxDepth:
		return fmt.Errorf("%w: depth %d not in [1, %d]", ErrInvalidConfig, cfg.Depth, MaxDepth)
	case cfg.Dims*cfg.Depth > MaxCapacityBits:
		return fmt.Errorf("%w: dims*depth %d exceeds %d bits of capacity",
			ErrInvalidConfig, cfg.Dims*cfg.Depth, MaxCapacityBits)
	case math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) || cfg.Scale <= 0:
		return fmt.Errorf("%w: scale %g must be a finite positive number", ErrInvalidConfig, cfg.Scale)
	}

	return nil
}

// MaxNodeCount returns 2^(Dims*Depth), the number of bottom-level cells.
func (cfg Config) MaxNodeCount() uint64 {
	return uint64(1) << (cfg.Dims * cfg.Depth)
}

// Fanout returns 2^Dims, the number of child slots of an internal node.
func (cfg Config) Fanout() int {
	return 1 << cfg.Dims
}
