package set

import "iter"

// Set is a collection without duplicates under the set's own equality.
type Set[E any] interface {
	// Size returns the number of elements.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Contains reports whether an element equal to e is present.
	Contains(e E) bool

	// Add inserts e and reports whether the set changed.
	Add(e E) bool

	// Remove deletes the element equal to e and reports whether one was present.
	Remove(e E) bool

	// Clear removes every element.
	Clear()

	// All yields every element once. The order is implementation-specific.
	All() iter.Seq[E]
}
