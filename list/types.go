package list

import (
	"errors"
	"iter"

	"github.com/katalvlaran/kone/growth"
	"github.com/katalvlaran/kone/iterator"
)

// Sentinel errors returned by list operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Size()) (or [0, Size()]
	// for insertion points and cursor positions).
	ErrIndexOutOfRange = errors.New("list: index out of range")

	// ErrCapacityExceeded indicates an attempt to grow a fixed-capacity list
	// beyond its declared capacity.
	ErrCapacityExceeded = errors.New("list: capacity exceeded")

	// ErrEmpty indicates a first/last element request on an empty list.
	ErrEmpty = errors.New("list: list is empty")

	// ErrNegativeSize indicates a negative initial size or capacity.
	ErrNegativeSize = errors.New("list: negative size")

	// ErrNilGenerator indicates a computed list constructed without a function.
	ErrNilGenerator = errors.New("list: nil generator")
)

// List is an ordered, indexable, read-only sequence.
type List[E any] interface {
	// Size returns the number of elements. Complexity: O(1).
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Get returns the element at index, or ErrIndexOutOfRange.
	Get(index int) (E, error)

	// Iterator returns a cursor positioned before the first element.
	Iterator() iterator.Linear[E]

	// IteratorFrom returns a cursor positioned before index, 0 <= index <= Size().
	IteratorFrom(index int) (iterator.Linear[E], error)

	// All yields index/element pairs in order.
	All() iter.Seq2[int, E]
}

// SettableList is a List whose elements can be replaced in place.
// Replacing an element is not a structural modification.
type SettableList[E any] interface {
	List[E]

	// Set replaces the element at index, or returns ErrIndexOutOfRange.
	Set(index int, e E) error

	// SettableIteratorFrom returns a cursor that can Set the element it last returned.
	SettableIteratorFrom(index int) (iterator.SettableLinear[E], error)
}

// MutableList is a SettableList that can grow and shrink.
type MutableList[E any] interface {
	SettableList[E]

	// Add appends e.
	Add(e E) error

	// AddAt inserts e before index; AddAt(Size(), e) appends.
	AddAt(index int, e E) error

	// AddAll appends elems in order.
	AddAll(elems ...E) error

	// AddAllAt inserts elems before index, preserving their order.
	AddAllAt(index int, elems ...E) error

	// RemoveAt deletes and returns the element at index.
	RemoveAt(index int) (E, error)

	// RemoveAllThat deletes every element matching pred and returns how many went.
	RemoveAllThat(pred func(E) bool) int

	// Clear removes every element.
	Clear()

	// MutableIteratorFrom returns a cursor with Set, Add and Remove.
	MutableIteratorFrom(index int) (iterator.MutableLinear[E], error)
}

// Options configures resizable lists.
type Options struct {
	// Capacity is the initial backing capacity; it is rounded up to a power of two.
	Capacity int

	// MinCapacity is the floor the list never shrinks below; rounded up to a power of two.
	MinCapacity int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: no preallocation, growth.MinCapacity floor.
func DefaultOptions() Options {
	return Options{Capacity: 0, MinCapacity: growth.MinCapacity}
}

// WithCapacity preallocates room for at least n elements.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithMinimumCapacity sets the shrink floor. Values below 1 are ignored.
func WithMinimumCapacity(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MinCapacity = n
		}
	}
}

// gather applies opts and normalizes them against an initial size.
// The returned capacities are powers of two with capacity >= floor and >= size.
func gather(size int, opts []Option) (capacity, floor int) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	floor = growth.PowerOf2GreaterOrEqualTo(o.MinCapacity)
	capacity = growth.PowerOf2GreaterOrEqualTo(max(o.Capacity, size, floor))
	return capacity, floor
}
