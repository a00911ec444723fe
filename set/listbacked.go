package set

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/list"
)

// ListBacked is a Set stored in insertion order in a mutable list.
type ListBacked[E any] struct {
	eq compare.Equality[E]
	l  list.MutableList[E]
}

var _ Set[int] = (*ListBacked[int])(nil)

// NewListBacked returns an empty set over a LinkedArrayList.
func NewListBacked[E any](eq compare.Equality[E]) *ListBacked[E] {
	return &ListBacked[E]{eq: eq, l: list.EmptyLinkedArrayList[E]()}
}

// ListBackedOf returns a set holding elems; later duplicates are dropped.
func ListBackedOf[E any](eq compare.Equality[E], elems ...E) *ListBacked[E] {
	s := NewListBacked(eq)
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// ListBackedOver adopts backing as the set's storage. Duplicates already in
// backing are removed, keeping the first occurrence.
func ListBackedOver[E any](eq compare.Equality[E], backing list.MutableList[E]) (*ListBacked[E], error) {
	it, err := backing.MutableIteratorFrom(0)
	if err != nil {
		return nil, err
	}
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, err
		}
		if list.IndexOf[E](backing, eq, e) < it.PreviousIndex() {
			if err := it.Remove(); err != nil {
				return nil, err
			}
		}
	}
	return &ListBacked[E]{eq: eq, l: backing}, nil
}

// Size returns the number of elements.
func (s *ListBacked[E]) Size() int { return s.l.Size() }

// IsEmpty reports whether the set holds no elements.
func (s *ListBacked[E]) IsEmpty() bool { return s.l.IsEmpty() }

// Contains scans the backing list. Complexity: O(n).
func (s *ListBacked[E]) Contains(e E) bool {
	return list.Contains[E](s.l, s.eq, e)
}

// Add appends e unless an equal element is present. It also reports false if
// the backing list refuses the element; TryAdd surfaces that error.
func (s *ListBacked[E]) Add(e E) bool {
	added, _ := s.TryAdd(e)
	return added
}

// TryAdd is Add with the backing list's error, e.g. list.ErrCapacityExceeded
// for a full FixedCapacityList.
func (s *ListBacked[E]) TryAdd(e E) (bool, error) {
	if s.Contains(e) {
		return false, nil
	}
	if err := s.l.Add(e); err != nil {
		return false, fmt.Errorf("ListBacked.Add: %w", err)
	}
	return true, nil
}

// Remove deletes the element equal to e and reports whether there was one.
// Complexity: O(n).
func (s *ListBacked[E]) Remove(e E) bool {
	found, _ := list.Remove[E](s.l, s.eq, e)
	return found
}

// RemoveAllThat deletes every element matching pred and returns how many went.
func (s *ListBacked[E]) RemoveAllThat(pred func(E) bool) int {
	return s.l.RemoveAllThat(pred)
}

// Clear removes every element.
func (s *ListBacked[E]) Clear() { s.l.Clear() }

// All yields the elements in insertion order.
func (s *ListBacked[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.l.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// List returns the backing list as a read-only view.
func (s *ListBacked[E]) List() list.List[E] { return s.l }

// String renders the elements in insertion order, e.g. "Set[a b]".
func (s *ListBacked[E]) String() string {
	return fmt.Sprintf("Set%v", list.ToSlice[E](s.l))
}
