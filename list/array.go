package list

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/kone/growth"
	"github.com/katalvlaran/kone/iterator"
)

// ArrayList is a growable list over one contiguous backing array.
//
// The capacity is always a power of two. Appending to a full list doubles it;
// once removals bring the size down to a quarter of the capacity the list
// shrinks to half, never below its minimum capacity. With default options the
// capacity therefore stays within size <= capacity < 4*size for non-empty lists.
//
// ArrayList is not safe for concurrent use; see Locked.
type ArrayList[E any] struct {
	data  []E // len(data) is the capacity
	size  int
	floor int // minimum capacity
	mods  int
}

var _ MutableList[int] = (*ArrayList[int])(nil)

// EmptyArrayList returns an empty ArrayList.
func EmptyArrayList[E any](opts ...Option) *ArrayList[E] {
	capacity, floor := gather(0, opts)
	return &ArrayList[E]{data: make([]E, capacity), floor: floor}
}

// NewArrayList returns an ArrayList of the given size whose element i is initializer(i).
// A nil initializer leaves zero values.
func NewArrayList[E any](size int, initializer func(index int) E, opts ...Option) (*ArrayList[E], error) {
	if size < 0 {
		return nil, fmt.Errorf("NewArrayList(%d): %w", size, ErrNegativeSize)
	}
	capacity, floor := gather(size, opts)
	l := &ArrayList[E]{data: make([]E, capacity), size: size, floor: floor}
	if initializer != nil {
		for i := 0; i < size; i++ {
			l.data[i] = initializer(i)
		}
	}
	return l, nil
}

// Of returns an ArrayList holding elems.
func Of[E any](elems ...E) *ArrayList[E] {
	l := EmptyArrayList[E](WithCapacity(len(elems)))
	l.size = copy(l.data, elems)
	return l
}

// Size returns the number of elements.
func (l *ArrayList[E]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *ArrayList[E]) IsEmpty() bool { return l.size == 0 }

// Capacity returns the length of the backing array.
func (l *ArrayList[E]) Capacity() int { return len(l.data) }

func (l *ArrayList[E]) modCount() int { return l.mods }

// Get returns the element at index.
// Complexity: O(1).
func (l *ArrayList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("ArrayList.Get(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	return l.data[index], nil
}

// Set replaces the element at index.
// Complexity: O(1).
func (l *ArrayList[E]) Set(index int, e E) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("ArrayList.Set(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	l.data[index] = e
	return nil
}

// Add appends e.
// Complexity: amortized O(1).
func (l *ArrayList[E]) Add(e E) error {
	l.reserve(l.size + 1)
	l.data[l.size] = e
	l.size++
	l.mods++
	return nil
}

// AddAt inserts e before index.
// Complexity: O(n - index).
func (l *ArrayList[E]) AddAt(index int, e E) error {
	return l.AddAllAt(index, e)
}

// AddAll appends elems.
func (l *ArrayList[E]) AddAll(elems ...E) error {
	return l.AddAllAt(l.size, elems...)
}

// AddAllAt inserts elems before index, preserving their order.
// Complexity: O(n - index + len(elems)).
func (l *ArrayList[E]) AddAllAt(index int, elems ...E) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("ArrayList.AddAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	if len(elems) == 0 {
		return nil
	}
	l.reserve(l.size + len(elems))
	l.size = insertInto(l.data, l.size, index, elems)
	l.mods++
	return nil
}

// RemoveAt deletes and returns the element at index.
// Complexity: O(n - index).
func (l *ArrayList[E]) RemoveAt(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("ArrayList.RemoveAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	e := l.data[index]
	l.size = removeFrom(l.data, l.size, index)
	l.mods++
	l.shrink()
	return e, nil
}

// RemoveAllThat deletes every element for which pred returns true.
// Complexity: O(n).
func (l *ArrayList[E]) RemoveAllThat(pred func(E) bool) int {
	kept := compact(l.data, l.size, pred)
	removed := l.size - kept
	if removed > 0 {
		l.size = kept
		l.mods++
		l.shrink()
	}
	return removed
}

// Clear drops every element and returns the backing array to the minimum capacity.
func (l *ArrayList[E]) Clear() {
	l.data = make([]E, l.floor)
	l.size = 0
	l.mods++
}

// Iterator returns a cursor before the first element.
func (l *ArrayList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](l, 0)
	return c
}

// IteratorFrom returns a cursor before index.
func (l *ArrayList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](l, index)
}

// SettableIteratorFrom returns a cursor that can replace elements.
func (l *ArrayList[E]) SettableIteratorFrom(index int) (iterator.SettableLinear[E], error) {
	return settableFrom[E](l, index)
}

// MutableIteratorFrom returns a cursor that can replace, insert and remove.
func (l *ArrayList[E]) MutableIteratorFrom(index int) (iterator.MutableLinear[E], error) {
	return mutableFrom[E](l, index)
}

// All yields index/element pairs in order.
func (l *ArrayList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// String renders the elements like a slice.
func (l *ArrayList[E]) String() string { return fmt.Sprint(l.data[:l.size]) }

// LogValue implements slog.LogValuer.
func (l *ArrayList[E]) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("size", l.size), slog.Int("capacity", len(l.data)))
}

func (l *ArrayList[E]) reserve(required int) {
	if n := growth.Grow(len(l.data), required); n != len(l.data) {
		l.resize(n)
	}
}

func (l *ArrayList[E]) shrink() {
	if n := growth.Shrink(len(l.data), l.size, l.floor); n != len(l.data) {
		l.resize(n)
	}
}

func (l *ArrayList[E]) resize(capacity int) {
	data := make([]E, capacity)
	copy(data, l.data[:l.size])
	l.data = data
}

// insertInto shifts data[index:size] right by len(elems), writes elems at index
// and returns the new size. data must have room for size+len(elems).
func insertInto[E any](data []E, size, index int, elems []E) int {
	n := len(elems)
	copy(data[index+n:size+n], data[index:size])
	copy(data[index:], elems)
	return size + n
}

// removeFrom shifts data[index+1:size] left by one, zeroes the vacated slot
// so the element can be collected and returns the new size.
func removeFrom[E any](data []E, size, index int) int {
	copy(data[index:], data[index+1:size])
	var zero E
	data[size-1] = zero
	return size - 1
}

// compact keeps the elements of data[:size] for which drop is false, in order,
// zeroes the tail and returns the number kept.
func compact[E any](data []E, size int, drop func(E) bool) int {
	w := 0
	for r := 0; r < size; r++ {
		if !drop(data[r]) {
			data[w] = data[r]
			w++
		}
	}
	var zero E
	for i := w; i < size; i++ {
		data[i] = zero
	}
	return w
}
