package set

import (
	"iter"

	"github.com/katalvlaran/kone/compare"
)

// Hashed is a Set that buckets elements by hash. Elements whose hashes collide
// share a ListBacked bucket and are told apart by the equality of h.
type Hashed[E any] struct {
	h       compare.Hashing[E]
	buckets map[uint64]*ListBacked[E]
	size    int
}

var _ Set[int] = (*Hashed[int])(nil)

// NewHashed returns an empty set hashed by h.
func NewHashed[E any](h compare.Hashing[E]) *Hashed[E] {
	return &Hashed[E]{h: h, buckets: make(map[uint64]*ListBacked[E])}
}

// HashedOf returns a Hashed set holding elems.
func HashedOf[E any](h compare.Hashing[E], elems ...E) *Hashed[E] {
	s := NewHashed(h)
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Size returns the number of elements.
func (s *Hashed[E]) Size() int { return s.size }

// IsEmpty reports whether the set holds no elements.
func (s *Hashed[E]) IsEmpty() bool { return s.size == 0 }

// Contains reports whether an element equal to e is present.
// Complexity: O(1) expected, O(bucket) with collisions.
func (s *Hashed[E]) Contains(e E) bool {
	b, ok := s.buckets[s.h.Hash(e)]
	return ok && b.Contains(e)
}

// Add inserts e unless an equal element is present.
func (s *Hashed[E]) Add(e E) bool {
	key := s.h.Hash(e)
	b, ok := s.buckets[key]
	if !ok {
		b = NewListBacked[E](s.h)
		s.buckets[key] = b
	}
	if !b.Add(e) {
		return false
	}
	s.size++
	return true
}

// Remove deletes the element equal to e; an emptied bucket is dropped.
func (s *Hashed[E]) Remove(e E) bool {
	key := s.h.Hash(e)
	b, ok := s.buckets[key]
	if !ok || !b.Remove(e) {
		return false
	}
	if b.IsEmpty() {
		delete(s.buckets, key)
	}
	s.size--
	return true
}

// Clear removes every element and bucket.
func (s *Hashed[E]) Clear() {
	clear(s.buckets)
	s.size = 0
}

// Buckets returns the number of distinct hashes in use.
func (s *Hashed[E]) Buckets() int { return len(s.buckets) }

// All yields the elements in no particular order.
func (s *Hashed[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, b := range s.buckets {
			for e := range b.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}
