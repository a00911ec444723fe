package set

import (
	"iter"

	"github.com/google/btree"

	"github.com/katalvlaran/kone/compare"
)

// degree is the B-tree branching factor; 2 gives a 2-3-4 tree.
const degree = 2

// Sorted is a Set kept in ascending order of o.
type Sorted[E any] struct {
	o compare.Order[E]
	t *btree.BTreeG[E]
}

var _ Set[int] = (*Sorted[int])(nil)

// NewSorted returns an empty set ordered by o.
func NewSorted[E any](o compare.Order[E]) *Sorted[E] {
	return &Sorted[E]{o: o, t: btree.NewG(degree, func(a, b E) bool { return o.Compare(a, b) < 0 })}
}

// SortedOf returns a Sorted set holding elems.
func SortedOf[E any](o compare.Order[E], elems ...E) *Sorted[E] {
	s := NewSorted(o)
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Size returns the number of elements.
func (s *Sorted[E]) Size() int { return s.t.Len() }

// IsEmpty reports whether the set holds no elements.
func (s *Sorted[E]) IsEmpty() bool { return s.t.Len() == 0 }

// Contains is O(log n).
func (s *Sorted[E]) Contains(e E) bool { return s.t.Has(e) }

// Add inserts e and reports whether it was new. The element already present
// is kept when one compares equal to e.
// Complexity: O(log n).
func (s *Sorted[E]) Add(e E) bool {
	if s.t.Has(e) {
		return false
	}
	s.t.ReplaceOrInsert(e)
	return true
}

// Remove deletes the element comparing equal to e.
// Complexity: O(log n).
func (s *Sorted[E]) Remove(e E) bool {
	_, found := s.t.Delete(e)
	return found
}

// Clear removes every element.
func (s *Sorted[E]) Clear() { s.t.Clear(false) }

// Min returns the smallest element.
func (s *Sorted[E]) Min() (E, bool) { return s.t.Min() }

// Max returns the largest element.
func (s *Sorted[E]) Max() (E, bool) { return s.t.Max() }

// All yields the elements in ascending order.
func (s *Sorted[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.t.Ascend(func(e E) bool { return yield(e) })
	}
}

// Range yields the elements e with from <= e < to, ascending.
func (s *Sorted[E]) Range(from, to E) iter.Seq[E] {
	return func(yield func(E) bool) {
		s.t.AscendRange(from, to, func(e E) bool { return yield(e) })
	}
}
