package heap

import (
	"errors"

	"github.com/katalvlaran/kone/growth"
)

// Sentinel errors for heap operations.
var (
	// ErrEmpty is returned by PopMinimum and Minimum on an empty heap.
	ErrEmpty = errors.New("heap: heap is empty")

	// ErrDetachedNode is returned when a handle whose entry has left the heap
	// is used, or when a node is passed to a heap it does not belong to.
	ErrDetachedNode = errors.New("heap: node is not in this heap")
)

// Options configures a heap.
type Options struct {
	// Capacity is the initial size of the backing array, rounded up to a power of two.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a heap starting at growth.MinCapacity slots.
func DefaultOptions() Options {
	return Options{Capacity: growth.MinCapacity}
}

// WithCapacity preallocates room for n entries. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
