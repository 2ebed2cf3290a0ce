// This file provides size-classed pooling of digit buffers to keep the
// reduction hot loops off the allocator.

package bignum

import (
	"math/bits"
	"sync"
)

// wordPools pools []uint64 scratch slices by size class. Size classes are
// powers of 4 starting at 64 words, which covers everything from a few
// hundred bits up to RSA-scale accumulators without fragmentation.
var wordPools = [...]sync.Pool{
	{New: func() any { return make([]uint64, 64) }},
	{New: func() any { return make([]uint64, 256) }},
	{New: func() any { return make([]uint64, 1024) }},
	{New: func() any { return make([]uint64, 4096) }},
	{New: func() any { return make([]uint64, 16384) }},
}

// wordPoolSizes defines the size classes for the word pools.
var wordPoolSizes = [...]int{64, 256, 1024, 4096, 16384}

// wordPoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
//
// Uses O(1) bitwise computation instead of linear search: the sizes are
// powers of 4 starting from 4^3 = 64, so index i corresponds to size
// 4^(i+3) and bits.Len maps directly to the index.
func wordPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordPoolSizes[len(wordPoolSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWords gets a zeroed word slice of exactly the given length from
// the pool; oversized requests fall back to a direct allocation.
//
// The slice must be handed back with releaseWords, preferably with defer:
//
//	t := acquireWords(size)
//	defer releaseWords(t)
func acquireWords(size int) []uint64 {
	idx := wordPoolIndex(size)
	if idx < 0 {
		return make([]uint64, size)
	}
	s := wordPools[idx].Get().([]uint64)
	clear(s)
	return s[:size]
}

// releaseWords returns a slice obtained from acquireWords to its pool.
// Safe to call with nil. Slices whose capacity does not match a size
// class were directly allocated and are left to the GC.
func releaseWords(s []uint64) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := wordPoolIndex(c)
	if idx >= 0 && wordPoolSizes[idx] == c {
		wordPools[idx].Put(s[:c])
	}
}
