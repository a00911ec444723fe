package list

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/iterator"
)

// VirtualList stores nothing: element i is fn(i), recomputed on every access.
// It suits formula-defined sequences that would be wasteful to materialize.
type VirtualList[E any] struct {
	size int
	fn   func(index int) E
}

// NewVirtualList returns a read-only list of the given size backed by fn.
func NewVirtualList[E any](size int, fn func(index int) E) (*VirtualList[E], error) {
	if size < 0 {
		return nil, fmt.Errorf("NewVirtualList(%d): %w", size, ErrNegativeSize)
	}
	if fn == nil {
		return nil, fmt.Errorf("NewVirtualList(%d): %w", size, ErrNilGenerator)
	}
	return &VirtualList[E]{size: size, fn: fn}, nil
}

var _ List[int] = (*VirtualList[int])(nil)

// Size returns the number of elements.
func (l *VirtualList[E]) Size() int { return l.size }

// IsEmpty reports whether the list was created with size 0.
func (l *VirtualList[E]) IsEmpty() bool { return l.size == 0 }

func (l *VirtualList[E]) modCount() int { return 0 }

// Get returns fn(index).
// Complexity: one call of fn.
func (l *VirtualList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("VirtualList.Get(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	return l.fn(index), nil
}

// Iterator returns a read-only cursor before the first element.
func (l *VirtualList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](l, 0)
	return c
}

// IteratorFrom returns a read-only cursor before index.
func (l *VirtualList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](l, index)
}

// All yields index/fn(index) pairs in order, calling fn once per element.
func (l *VirtualList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.fn(i)) {
				return
			}
		}
	}
}
