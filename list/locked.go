package list

import (
	"iter"
	"sync"

	"github.com/katalvlaran/kone/iterator"
)

// LockedList wraps a MutableList with a sync.RWMutex.
//
// The lists in this package carry no synchronization of their own; LockedList
// is the thin external wrapper for sharing one between goroutines. Every method
// holds the lock for its own duration only: a cursor over a LockedList locks per
// step, so a traversal can still observe interleaved writes (and then fails fast
// with iterator.ErrConcurrentModification). Use Do or View for compound
// operations that must be atomic.
type LockedList[E any] struct {
	mu sync.RWMutex
	l  MutableList[E]
}

// Locked returns a LockedList guarding l. l must not be used directly afterwards.
func Locked[E any](l MutableList[E]) *LockedList[E] {
	return &LockedList[E]{l: l}
}

var _ MutableList[int] = (*LockedList[int])(nil)

// Do runs fn with exclusive access to the wrapped list. fn must work only
// through its argument: calling a method of s from inside fn deadlocks.
func (s *LockedList[E]) Do(fn func(l MutableList[E]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.l)
}

// View runs fn with shared read access to the wrapped list. As with Do, fn
// must not call back into s.
func (s *LockedList[E]) View(fn func(l List[E]) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.l)
}

func (s *LockedList[E]) modCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.l.(interface{ modCount() int }); ok {
		return c.modCount()
	}
	return 0
}

// Size returns the number of elements under the read lock.
func (s *LockedList[E]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Size()
}

// IsEmpty reports whether the list holds no elements.
func (s *LockedList[E]) IsEmpty() bool { return s.Size() == 0 }

// Get returns the element at index under the read lock.
func (s *LockedList[E]) Get(index int) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Get(index)
}

// Set replaces the element at index under the write lock.
func (s *LockedList[E]) Set(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, e)
}

// Add appends e under the write lock.
func (s *LockedList[E]) Add(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Add(e)
}

// AddAt inserts e before index under the write lock.
func (s *LockedList[E]) AddAt(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddAt(index, e)
}

// AddAll appends elems atomically.
func (s *LockedList[E]) AddAll(elems ...E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddAll(elems...)
}

// AddAllAt inserts elems before index atomically.
func (s *LockedList[E]) AddAllAt(index int, elems ...E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddAllAt(index, elems...)
}

// RemoveAt deletes and returns the element at index under the write lock.
func (s *LockedList[E]) RemoveAt(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

// RemoveAllThat deletes every match under the write lock. pred must not call
// back into s.
func (s *LockedList[E]) RemoveAllThat(pred func(E) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAllThat(pred)
}

// Clear removes every element under the write lock.
func (s *LockedList[E]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

// Iterator returns a cursor that takes the lock on every step.
func (s *LockedList[E]) Iterator() iterator.Linear[E] {
	c, _ := linearFrom[E](s, 0)
	return c
}

// IteratorFrom returns a cursor before index that locks per step.
func (s *LockedList[E]) IteratorFrom(index int) (iterator.Linear[E], error) {
	return linearFrom[E](s, index)
}

// SettableIteratorFrom returns a locking cursor that can replace elements.
func (s *LockedList[E]) SettableIteratorFrom(index int) (iterator.SettableLinear[E], error) {
	return settableFrom[E](s, index)
}

// MutableIteratorFrom returns a locking cursor that can replace, insert and remove.
func (s *LockedList[E]) MutableIteratorFrom(index int) (iterator.MutableLinear[E], error) {
	return mutableFrom[E](s, index)
}

// All yields a snapshot taken under the read lock.
func (s *LockedList[E]) All() iter.Seq2[int, E] {
	s.mu.RLock()
	snapshot := ToSlice[E](s.l)
	s.mu.RUnlock()
	return func(yield func(int, E) bool) {
		for i, e := range snapshot {
			if !yield(i, e) {
				return
			}
		}
	}
}
