package list

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/kone/growth"
	"github.com/katalvlaran/kone/iterator"
)

// LinkedArrayList is a resizable list over a ring buffer.
//
// It follows the same power-of-two growth policy as ArrayList, but logical
// index 0 lives at physical slot front rather than slot 0. Adding or removing
// at either end moves front or the end of the ring and never shifts elements,
// so both ends are amortized O(1). Interior inserts and removals shift whichever
// side of the index is shorter.
//
// LinkedArrayList is the default backing store of set.ListBacked and
// dict.ListBackedMap. It is not safe for concurrent use.
type LinkedArrayList[E any] struct {
	data    []E // ring; len(data) is a power of two
	front   int // physical slot of logical index 0
	size    int
	floor   int
	mods    int
	shifted int // elements moved by interior shifts; reallocations are not counted
}

var _ MutableList[int] = (*LinkedArrayList[int])(nil)

// EmptyLinkedArrayList returns an empty LinkedArrayList.
func EmptyLinkedArrayList[E any](opts ...Option) *LinkedArrayList[E] {
	capacity, floor := gather(0, opts)
	return &LinkedArrayList[E]{data: make([]E, capacity), floor: floor}
}

// NewLinkedArrayList returns a LinkedArrayList of the given size whose element i
// is initializer(i). A nil initializer leaves zero values.
func NewLinkedArrayList[E any](size int, initializer func(index int) E, opts ...Option) (*LinkedArrayList[E], error) {
	if size < 0 {
		return nil, fmt.Errorf("NewLinkedArrayList(%d): %w", size, ErrNegativeSize)
	}
	capacity, floor := gather(size, opts)
	l := &LinkedArrayList[E]{data: make([]E, capacity), size: size, floor: floor}
	if initializer != nil {
		for i := 0; i < size; i++ {
			l.data[i] = initializer(i)
		}
	}
	return l, nil
}

// Size returns the number of elements.
func (l *LinkedArrayList[E]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *LinkedArrayList[E]) IsEmpty() bool { return l.size == 0 }

// Capacity returns the length of the ring.
func (l *LinkedArrayList[E]) Capacity() int { return len(l.data) }

func (l *LinkedArrayList[E]) modCount() int { return l.mods }

// slot maps a logical index to its physical slot.
func (l *LinkedArrayList[E]) slot(index int) int {
	return (l.front + index) & (len(l.data) - 1)
}

// Get returns the element at index.
// Complexity: O(1).
func (l *LinkedArrayList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("LinkedArrayList.Get(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	return l.data[l.slot(index)], nil
}

// Set replaces the element at index.
// Complexity: O(1).
func (l *LinkedArrayList[E]) Set(index int, e E) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("LinkedArrayList.Set(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	l.data[l.slot(index)] = e
	return nil
}

// First returns the element at index 0.
func (l *LinkedArrayList[E]) First() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, fmt.Errorf("LinkedArrayList.First: %w", ErrEmpty)
	}
	return l.data[l.front], nil
}

// Last returns the element at index Size()-1.
func (l *LinkedArrayList[E]) Last() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, fmt.Errorf("LinkedArrayList.Last: %w", ErrEmpty)
	}
	return l.data[l.slot(l.size-1)], nil
}

// Add appends e.
// Complexity: amortized O(1).
func (l *LinkedArrayList[E]) Add(e E) error {
	l.reserve(l.size + 1)
	l.data[l.slot(l.size)] = e
	l.size++
	l.mods++
	return nil
}

// AddFirst prepends e by stepping front back one slot.
// Complexity: amortized O(1).
func (l *LinkedArrayList[E]) AddFirst(e E) error {
	l.reserve(l.size + 1)
	l.front = (l.front - 1) & (len(l.data) - 1)
	l.data[l.front] = e
	l.size++
	l.mods++
	return nil
}

// RemoveFirst deletes and returns the element at index 0.
// Complexity: amortized O(1).
func (l *LinkedArrayList[E]) RemoveFirst() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, fmt.Errorf("LinkedArrayList.RemoveFirst: %w", ErrEmpty)
	}
	e := l.data[l.front]
	l.data[l.front] = zero
	l.front = (l.front + 1) & (len(l.data) - 1)
	l.size--
	l.mods++
	l.shrink()
	return e, nil
}

// RemoveLast deletes and returns the element at index Size()-1.
// Complexity: amortized O(1).
func (l *LinkedArrayList[E]) RemoveLast() (E, error) {
	var zero E
	if l.size == 0 {
		return zero, fmt.Errorf("LinkedArrayList.RemoveLast: %w", ErrEmpty)
	}
	s := l.slot(l.size - 1)
	e := l.data[s]
	l.data[s] = zero
	l.size--
	l.mods++
	l.shrink()
	return e, nil
}

// AddAt inserts e before index.
// Complexity: O(min(index, n - index)).
func (l *LinkedArrayList[E]) AddAt(index int, e E) error {
	return l.AddAllAt(index, e)
}

// AddAll appends elems.
func (l *LinkedArrayList[E]) AddAll(elems ...E) error {
	return l.AddAllAt(l.size, elems...)
}

// AddAllAt inserts elems before index. The shorter side of index is moved to
// open a gap of len(elems) slots.
func (l *LinkedArrayList[E]) AddAllAt(index int, elems ...E) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("LinkedArrayList.AddAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	n := len(elems)
	if n == 0 {
		return nil
	}
	l.reserve(l.size + n)
	if index < l.size-index {
		// Move the head [0, index) n slots towards the front.
		l.front = (l.front - n) & (len(l.data) - 1)
		for k := 0; k < index; k++ {
			l.data[l.slot(k)] = l.data[l.slot(k+n)]
		}
		l.shifted += index
	} else {
		// Move the tail [index, size) n slots towards the back.
		for k := l.size - 1; k >= index; k-- {
			l.data[l.slot(k+n)] = l.data[l.slot(k)]
		}
		l.shifted += l.size - index
	}
	for j, e := range elems {
		l.data[l.slot(index+j)] = e
	}
	l.size += n
	l.mods++
	return nil
}

// RemoveAt deletes and returns the element at index, closing the gap from the
// shorter side.
// Complexity: O(min(index, n - index)).
func (l *LinkedArrayList[E]) RemoveAt(index int) (E, error) {
	var zero E
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("LinkedArrayList.RemoveAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	e := l.data[l.slot(index)]
	if index < l.size-1-index {
		for k := index; k > 0; k-- {
			l.data[l.slot(k)] = l.data[l.slot(k-1)]
		}
		l.data[l.front] = zero
		l.front = (l.front + 1) & (len(l.data) - 1)
		l.shifted += index
	} else {
		for k := index; k < l.size-1; k++ {
			l.data[l.slot(k)] = l.data[l.slot(k+1)]
		}
		l.data[l.slot(l.size-1)] = zero
		l.shifted += l.size - 1 - index
	}
	l.size--
	l.mods++
	l.shrink()
	return e, nil
}

// RemoveAllThat deletes every element for which pred returns true.
// Complexity: O(n).
func (l *LinkedArrayList[E]) RemoveAllThat(pred func(E) bool) int {
	w := 0
	for r := 0; r < l.size; r++ {
		e := l.data[l.slot(r)]
		if pred(e) {
			continue
		}
		l.data[l.slot(w)] = e
		w++
	}
	removed := l.size - w
	if removed == 0 {
		return 0
	}
	var zero E
	for k := w; k < l.size; k++ {
		l.data[l.slot(k)] = zero
	}
	l.size = w
	l.mods++
	l.shrink()
	return removed
}

// Clear drops every element and returns the ring to the minimum capacity.
func (l *LinkedArrayList[E]) Clear() {
	l.data = make([]E, l.floor)
	l.front, l.size = 0, 0
	l.mods++
}

// Iterator returns a cursor before the first element.
func (l *LinkedArrayList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](l, 0)
	return c
}

// IteratorFrom returns a cursor before index.
func (l *LinkedArrayList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](l, index)
}

// SettableIteratorFrom returns a cursor that can replace elements.
func (l *LinkedArrayList[E]) SettableIteratorFrom(index int) (iterator.SettableLinear[E], error) {
	return settableFrom[E](l, index)
}

// MutableIteratorFrom returns a cursor that can replace, insert and remove.
func (l *LinkedArrayList[E]) MutableIteratorFrom(index int) (iterator.MutableLinear[E], error) {
	return mutableFrom[E](l, index)
}

// All yields index/element pairs in logical order.
func (l *LinkedArrayList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[l.slot(i)]) {
				return
			}
		}
	}
}

// String renders the elements in logical order like a slice.
func (l *LinkedArrayList[E]) String() string { return fmt.Sprint(l.ordered(l.size)) }

// LogValue implements slog.LogValuer.
func (l *LinkedArrayList[E]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", l.size),
		slog.Int("capacity", len(l.data)),
		slog.Int("front", l.front),
	)
}

func (l *LinkedArrayList[E]) reserve(required int) {
	if n := growth.Grow(len(l.data), required); n != len(l.data) {
		l.resize(n)
	}
}

func (l *LinkedArrayList[E]) shrink() {
	if n := growth.Shrink(len(l.data), l.size, l.floor); n != len(l.data) {
		l.resize(n)
	}
}

// resize unrolls the ring into a new array of the given capacity, front at 0.
func (l *LinkedArrayList[E]) resize(capacity int) {
	l.data = l.ordered(capacity)
	l.front = 0
}

// ordered copies the elements in logical order into a new array of the given
// length (at least Size()), with the two-copy unrolling of a circular buffer.
func (l *LinkedArrayList[E]) ordered(length int) []E {
	out := make([]E, length)
	if l.front+l.size <= len(l.data) {
		copy(out, l.data[l.front:l.front+l.size])
	} else {
		c := copy(out, l.data[l.front:])
		copy(out[c:], l.data[:l.size-c])
	}
	return out
}
