// Package growth holds the power-of-two sizing arithmetic shared by every
// growable container in this module.
//
// Backing arrays always have a power-of-two capacity. A container grows by
// doubling when it runs out of room and shrinks by halving once its size falls
// to a quarter of the capacity. The gap between the two thresholds keeps an
// alternating add/remove sequence at a boundary from reallocating every time.
package growth

import (
	"math/bits"
	"sort"

	"golang.org/x/exp/constraints"
)

// MinCapacity is the smallest capacity a resizable container shrinks to.
const MinCapacity = 2

// PowersOf2 lists every power of two representable as a non-negative int64,
// in ascending order: PowersOf2[i] == 1<<i.
var PowersOf2 = func() [63]int64 {
	var t [63]int64
	for i := range t {
		t[i] = 1 << i
	}
	return t
}()

// PowerOf2GreaterOrEqualTo returns the smallest power of two p with p >= n.
// Values of n below 2 yield 1. Requests above the largest representable power
// of T saturate at that power, so only there the result is smaller than n.
func PowerOf2GreaterOrEqualTo[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}
	top := uint64(maxOf[T]()>>1) + 1 // largest power of two T can hold
	if u := uint64(n); u < top {
		return T(uint64(1) << bits.Len64(u-1))
	}
	return T(top)
}

// maxOf returns the largest value of an integer type.
func maxOf[T constraints.Integer]() T {
	var v T = 1
	for v<<1 > v {
		v = v<<1 | 1
	}
	return v
}

// IndexOfPowerOf2 returns i such that PowersOf2[i] == p, or -1 when p is not a
// power of two.
func IndexOfPowerOf2[T constraints.Integer](p T) int {
	if p <= 0 {
		return -1
	}
	v := int64(p)
	i := sort.Search(len(PowersOf2), func(i int) bool { return PowersOf2[i] >= v })
	if i == len(PowersOf2) || PowersOf2[i] != v {
		return -1
	}
	return i
}

// DoublingsFrom returns how many factor-of-two doublings lead from floor to p.
// It returns -1 if either argument is not a power of two or p < floor.
func DoublingsFrom(floor, p int) int {
	fi, pi := IndexOfPowerOf2(floor), IndexOfPowerOf2(p)
	if fi < 0 || pi < 0 || pi < fi {
		return -1
	}
	return pi - fi
}

// Grow returns the capacity a container must move to so that required elements
// fit. It returns capacity unchanged when no growth is needed; otherwise the
// result is the smallest power of two >= required (doubling for a single append).
func Grow(capacity, required int) int {
	if required <= capacity {
		return capacity
	}
	return PowerOf2GreaterOrEqualTo(required)
}

// Shrink returns the capacity a container holding size elements should move to.
// Shrinking only happens once size <= capacity/4; the new capacity is the
// smallest power of two >= 2*size, never below floor.
func Shrink(capacity, size, floor int) int {
	if capacity <= floor || size > capacity/4 {
		return capacity
	}
	next := PowerOf2GreaterOrEqualTo(2 * size)
	if next < floor {
		next = floor
	}
	return next
}
