package list

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/iterator"
)

// FixedCapacityList is a mutable list whose backing array is allocated once.
// It never resizes: growing past its capacity fails with ErrCapacityExceeded
// and leaves the list unchanged.
type FixedCapacityList[E any] struct {
	data []E
	size int
	mods int
}

// NewFixedCapacityList returns an empty list able to hold capacity elements.
func NewFixedCapacityList[E any](capacity int) (*FixedCapacityList[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("NewFixedCapacityList(%d): %w", capacity, ErrNegativeSize)
	}
	return &FixedCapacityList[E]{data: make([]E, capacity)}, nil
}

// FixedCapacityListOf returns a list of the given capacity whose first size
// elements are initializer(i).
func FixedCapacityListOf[E any](capacity, size int, initializer func(index int) E) (*FixedCapacityList[E], error) {
	if size > capacity {
		return nil, fmt.Errorf("FixedCapacityListOf(%d, %d): %w", capacity, size, ErrCapacityExceeded)
	}
	if size < 0 {
		return nil, fmt.Errorf("FixedCapacityListOf(%d, %d): %w", capacity, size, ErrNegativeSize)
	}
	l, err := NewFixedCapacityList[E](capacity)
	if err != nil {
		return nil, err
	}
	if initializer != nil {
		for i := 0; i < size; i++ {
			l.data[i] = initializer(i)
		}
	}
	l.size = size
	return l, nil
}

var (
	_ MutableList[int]  = (*FixedCapacityList[int])(nil)
	_ SettableList[int] = (*SettableArrayList[int])(nil)
)

// Size returns the number of elements.
func (l *FixedCapacityList[E]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *FixedCapacityList[E]) IsEmpty() bool { return l.size == 0 }

// Capacity returns the fixed length of the backing array.
func (l *FixedCapacityList[E]) Capacity() int { return len(l.data) }

func (l *FixedCapacityList[E]) modCount() int { return l.mods }

// Get returns the element at index.
// Complexity: O(1).
func (l *FixedCapacityList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("FixedCapacityList.Get(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	return l.data[index], nil
}

// Set replaces the element at index.
// Complexity: O(1).
func (l *FixedCapacityList[E]) Set(index int, e E) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("FixedCapacityList.Set(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	l.data[index] = e
	return nil
}

// Add appends e, or returns ErrCapacityExceeded when the list is full.
func (l *FixedCapacityList[E]) Add(e E) error { return l.AddAllAt(l.size, e) }

// AddAt inserts e before index.
// Complexity: O(n - index).
func (l *FixedCapacityList[E]) AddAt(index int, e E) error { return l.AddAllAt(index, e) }

// AddAll appends elems, all or none.
func (l *FixedCapacityList[E]) AddAll(elems ...E) error { return l.AddAllAt(l.size, elems...) }

// AddAllAt inserts elems before index, or fails without side effects if they
// do not fit.
func (l *FixedCapacityList[E]) AddAllAt(index int, elems ...E) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("FixedCapacityList.AddAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	if l.size+len(elems) > len(l.data) {
		return fmt.Errorf("FixedCapacityList.AddAt: %d + %d > capacity %d: %w",
			l.size, len(elems), len(l.data), ErrCapacityExceeded)
	}
	if len(elems) == 0 {
		return nil
	}
	l.size = insertInto(l.data, l.size, index, elems)
	l.mods++
	return nil
}

// RemoveAt deletes and returns the element at index. The capacity is kept.
// Complexity: O(n - index).
func (l *FixedCapacityList[E]) RemoveAt(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("FixedCapacityList.RemoveAt(%d) on size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	e := l.data[index]
	l.size = removeFrom(l.data, l.size, index)
	l.mods++
	return e, nil
}

// RemoveAllThat deletes every element for which pred returns true.
// Complexity: O(n).
func (l *FixedCapacityList[E]) RemoveAllThat(pred func(E) bool) int {
	kept := compact(l.data, l.size, pred)
	removed := l.size - kept
	if removed > 0 {
		l.size = kept
		l.mods++
	}
	return removed
}

// Clear zeroes the used slots; the capacity is kept.
func (l *FixedCapacityList[E]) Clear() {
	clear(l.data[:l.size])
	l.size = 0
	l.mods++
}

// Iterator returns a cursor before the first element.
func (l *FixedCapacityList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](l, 0)
	return c
}

// IteratorFrom returns a cursor before index.
func (l *FixedCapacityList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](l, index)
}

// SettableIteratorFrom returns a cursor that can replace elements.
func (l *FixedCapacityList[E]) SettableIteratorFrom(index int) (iterator.SettableLinear[E], error) {
	return settableFrom[E](l, index)
}

// MutableIteratorFrom returns a cursor that can replace, insert and remove.
// Inserting through it fails with ErrCapacityExceeded once the list is full.
func (l *FixedCapacityList[E]) MutableIteratorFrom(index int) (iterator.MutableLinear[E], error) {
	return mutableFrom[E](l, index)
}

// All yields index/element pairs in order.
func (l *FixedCapacityList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// String renders the elements like a slice.
func (l *FixedCapacityList[E]) String() string { return fmt.Sprint(l.data[:l.size]) }

// SettableArrayList is a fixed-size list: elements can be replaced but never
// inserted or removed. It is the backing store of eager multidimensional lists.
type SettableArrayList[E any] struct {
	data []E
}

// NewSettableArrayList returns a list of the given size whose element i is
// initializer(i). A nil initializer leaves zero values.
func NewSettableArrayList[E any](size int, initializer func(index int) E) (*SettableArrayList[E], error) {
	if size < 0 {
		return nil, fmt.Errorf("NewSettableArrayList(%d): %w", size, ErrNegativeSize)
	}
	data := make([]E, size)
	if initializer != nil {
		for i := range data {
			data[i] = initializer(i)
		}
	}
	return &SettableArrayList[E]{data: data}, nil
}

// Size returns the fixed number of elements.
func (l *SettableArrayList[E]) Size() int { return len(l.data) }

// IsEmpty reports whether the list was created with size 0.
func (l *SettableArrayList[E]) IsEmpty() bool { return len(l.data) == 0 }

// modCount is constant: the list is never structurally modified.
func (l *SettableArrayList[E]) modCount() int { return 0 }

// Get returns the element at index.
// Complexity: O(1).
func (l *SettableArrayList[E]) Get(index int) (E, error) {
	if index < 0 || index >= len(l.data) {
		var zero E
		return zero, fmt.Errorf("SettableArrayList.Get(%d) on size %d: %w", index, len(l.data), ErrIndexOutOfRange)
	}
	return l.data[index], nil
}

// Set replaces the element at index.
// Complexity: O(1).
func (l *SettableArrayList[E]) Set(index int, e E) error {
	if index < 0 || index >= len(l.data) {
		return fmt.Errorf("SettableArrayList.Set(%d) on size %d: %w", index, len(l.data), ErrIndexOutOfRange)
	}
	l.data[index] = e
	return nil
}

// Iterator returns a cursor before the first element.
func (l *SettableArrayList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](l, 0)
	return c
}

// IteratorFrom returns a cursor before index.
func (l *SettableArrayList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](l, index)
}

// SettableIteratorFrom returns a cursor that can replace elements. Its Add
// and Remove report errors.ErrUnsupported.
func (l *SettableArrayList[E]) SettableIteratorFrom(index int) (iterator.SettableLinear[E], error) {
	return settableFrom[E](l, index)
}

// All yields index/element pairs in order.
func (l *SettableArrayList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range l.data {
			if !yield(i, e) {
				return
			}
		}
	}
}

// String renders the elements like a slice.
func (l *SettableArrayList[E]) String() string { return fmt.Sprint(l.data) }
