package compare

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Equality decides whether two elements are the same for a container.
type Equality[E any] interface {
	Equal(a, b E) bool
}

// Hashing is an Equality that can also hash elements.
// Equal elements must produce equal hashes.
type Hashing[E any] interface {
	Equality[E]
	Hash(e E) uint64
}

// Order is a total order over E. Compare returns a negative number when a < b,
// zero when a and b are equal and a positive number when a > b.
// Equal(a, b) must agree with Compare(a, b) == 0.
type Order[E any] interface {
	Equality[E]
	Compare(a, b E) int
}

type comparableEquality[E comparable] struct{}

func (comparableEquality[E]) Equal(a, b E) bool { return a == b }

// Comparable returns the Equality given by Go's == operator.
func Comparable[E comparable]() Equality[E] {
	return comparableEquality[E]{}
}

// EqualityFunc adapts a plain function to Equality.
type EqualityFunc[E any] func(a, b E) bool

// Equal implements Equality.
func (f EqualityFunc[E]) Equal(a, b E) bool { return f(a, b) }

type naturalOrder[E constraints.Ordered] struct{}

func (naturalOrder[E]) Equal(a, b E) bool { return a == b }

func (naturalOrder[E]) Compare(a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Natural returns the ascending order of an ordered type.
// NaN values of floating point types compare equal to everything but themselves,
// so they must not be stored in ordered containers.
func Natural[E constraints.Ordered]() Order[E] {
	return naturalOrder[E]{}
}

// OrderFunc adapts a three-way comparison function to Order.
type OrderFunc[E any] func(a, b E) int

// Equal implements Equality.
func (f OrderFunc[E]) Equal(a, b E) bool { return f(a, b) == 0 }

// Compare implements Order.
func (f OrderFunc[E]) Compare(a, b E) int { return f(a, b) }

type reversed[E any] struct{ o Order[E] }

func (r reversed[E]) Equal(a, b E) bool  { return r.o.Equal(a, b) }
func (r reversed[E]) Compare(a, b E) int { return r.o.Compare(b, a) }

// Reverse returns o with its direction flipped. A minimum heap built over
// Reverse(o) behaves as a maximum heap over o.
func Reverse[E any](o Order[E]) Order[E] {
	if r, ok := o.(reversed[E]); ok {
		return r.o
	}
	return reversed[E]{o: o}
}

// FromComparator adapts a gods comparator (for example utils.IntComparator or
// utils.StringComparator) to an Order. The comparator receives the elements
// boxed as interface{} values.
func FromComparator[E any](c utils.Comparator) Order[E] {
	return OrderFunc[E](func(a, b E) int { return c(a, b) })
}

type hashingFunc[E any] struct {
	Equality[E]
	hash func(E) uint64
}

func (h hashingFunc[E]) Hash(e E) uint64 { return h.hash(e) }

// HashingFunc combines an Equality with a hash function.
func HashingFunc[E any](eq Equality[E], hash func(E) uint64) Hashing[E] {
	return hashingFunc[E]{Equality: eq, hash: hash}
}

// StringHashing hashes strings by content with xxhash.
func StringHashing() Hashing[string] {
	return HashingFunc(Comparable[string](), xxhash.Sum64String)
}

// BytesHashing hashes byte slices by content with xxhash.
func BytesHashing() Hashing[[]byte] {
	return HashingFunc[[]byte](EqualityFunc[[]byte](bytes.Equal), xxhash.Sum64)
}

// Less reports whether a sorts before b under o.
func Less[E any](o Order[E], a, b E) bool {
	return o.Compare(a, b) < 0
}

// Min returns the smaller of a and b under o, preferring a on ties.
func Min[E any](o Order[E], a, b E) E {
	if o.Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b under o, preferring a on ties.
func Max[E any](o Order[E], a, b E) E {
	if o.Compare(b, a) > 0 {
		return b
	}
	return a
}
