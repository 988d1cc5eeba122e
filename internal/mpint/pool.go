// This file provides pooled scratch storage for the multiplication and
// division routines to reduce GC pressure.

package mpint

import (
	"math/bits"
	"sync"
)

// natPools pools limb slices by size class.
// Size classes are powers of 4 from 64 to 16M limbs to avoid fragmentation.
var natPools = [...]sync.Pool{
	{New: func() any { return make(nat, 64) }},
	{New: func() any { return make(nat, 256) }},
	{New: func() any { return make(nat, 1024) }},
	{New: func() any { return make(nat, 4096) }},
	{New: func() any { return make(nat, 16384) }},
	{New: func() any { return make(nat, 65536) }},
	{New: func() any { return make(nat, 262144) }},
	{New: func() any { return make(nat, 1048576) }},  // 1M limbs = 4MB
	{New: func() any { return make(nat, 4194304) }},  // 4M limbs = 16MB
	{New: func() any { return make(nat, 16777216) }}, // 16M limbs = 64MB
}

// natSizes defines the size classes for natPools.
var natSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

// natPoolIndex returns the pool index for a given size, or -1 if the size
// is too large for pooling.
//
// Size class i holds 4^(i+3) limbs, so bits.Len(size-1) maps directly to
// the index.
func natPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > natSizes[len(natSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// getNat returns a zeroed nat of length n. The backing array comes from
// the pool when n fits a size class and may be larger than n.
//
// Callers release the slice with putNat once it is no longer referenced:
//
//	t := getNat(n)
//	defer putNat(t)
func getNat(n int) nat {
	idx := natPoolIndex(n)
	if idx < 0 {
		return make(nat, n)
	}
	z := natPools[idx].Get().(nat)
	z = z[:n]
	z.clear()
	return z
}

// putNat returns x's backing array to its pool. Slices whose capacity does
// not match a size class (directly allocated, or regrown by the caller) are
// left to the GC. Safe to call with nil.
func putNat(x nat) {
	if x == nil {
		return
	}
	c := cap(x)
	idx := natPoolIndex(c)
	if idx >= 0 && natSizes[idx] == c {
		natPools[idx].Put(x[:c])
	}
}
