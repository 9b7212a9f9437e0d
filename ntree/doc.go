// Package ntree defines a generic D-dimensional subdivision tree (a quad-tree
// for D=2, an oct-tree for D=3 and so on).
//
// The indexed domain is the hypercube [0, scale]^D. Every level of the tree splits
// the current cell into 2^D equal sub-cells, so a tree of a given depth has at most
// 2^(D*depth) cells at the bottom level. Nodes are created lazily, the first time a
// descent reaches them, and are never removed.
//
// Cell indexing:
// -------------
//
// A coordinate vector is normalized (divided by scale) and then, level by level,
// every axis k contributes one binary digit:
//
//	bit_k = roundHalfUp(c_k)        // 0.5 rounds to 1
//	j     = Σ bit_k * 2^k           // composite child index in [0, 2^D)
//	c_k   = 2*c_k - bit_k           // back into [0, 1] for the next level
//
// which is the same as reading successive bits of the fixed-point expansion of
// every normalized coordinate. For D=2 the children of a node are laid out as:
//
//	y
//	1 +-------+-------+
//	  |   2   |   3   |
//	  |  0,1  |  1,1  |
//	.5+-------+-------+
//	  |   0   |   1   |
//	  |  0,0  |  1,0  |
//	0 +-------+-------+ x
//	  0      .5       1
//
// Nodes:
// -----
//
// All nodes live in a flat arena owned by the Tree and are addressed by Handle.
// A node is exactly one of:
//
//   - Internal - has a child table, never a payload;
//   - Empty    - a bottom-level cell materialized by Lookup without a payload;
//   - Leaf     - a bottom-level cell holding a payload.
//
// A Tree is not safe for concurrent use.
package ntree
