package ntree

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// fanout is the child table of an internal node.
//
// Up to 2^D children are addressed by a composite index. Only the occupied slots
// are stored: the bitmap has one bit per index and handles keeps the children in
// index order, so the position of an index is the number of bits set below it.
type fanout struct {
	bitmap  []uint64 // 2^D bits, allocated on the first put
	handles []Handle
}

// locate returns the word offset, the bit mask and the rank of index j.
func (f *fanout) locate(j int) (ofs int, mask uint64, rank uint64) {
	ofs = j >> 6
	mask = uint64(1) << (j & 0x3F) // the lowest 6 bits (2**6 == 64)

	rank = popcount.Count(f.bitmap[ofs] & (mask - 1))
	for i := 0; i < ofs; i++ {
		rank += popcount.Count(f.bitmap[i])
	}

	return ofs, mask, rank
}

func (f *fanout) get(j int) (Handle, bool) {
	if f.bitmap == nil {
		return NoHandle, false
	}

	ofs, mask, rank := f.locate(j)
	if f.bitmap[ofs]&mask == 0 {
		return NoHandle, false
	}

	return f.handles[rank], true
}

// put stores h at index j which must not be occupied yet.
func (f *fanout) put(j, size int, h Handle) {
	if f.bitmap == nil {
		f.bitmap = make([]uint64, (size+63)>>6)
	}

	ofs, mask, rank := f.locate(j)

	f.bitmap[ofs] |= mask
	f.handles = append(f.handles, NoHandle)
	copy(f.handles[rank+1:], f.handles[rank:])
	f.handles[rank] = h
}

func (f *fanout) len() int {
	return len(f.handles)
}

// each visits the children in ascending index order until fn returns false.
func (f *fanout) each(fn func(j int, h Handle) bool) bool {
	var n int

	for ofs, word := range f.bitmap {
		for word != 0 {
			low := word & -word
			if !fn(ofs<<6+bits.TrailingZeros64(low), f.handles[n]) {
				return false
			}
			word ^= low
			n++
		}
	}

	return true
}
