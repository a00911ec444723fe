package list

import (
	"github.com/katalvlaran/kone/compare"
)

// Contains reports whether l holds an element equal to e under eq.
// Complexity: O(n).
func Contains[E any](l List[E], eq compare.Equality[E], e E) bool {
	return IndexOf(l, eq, e) >= 0
}

// IndexOf returns the first index holding an element equal to e, or -1.
func IndexOf[E any](l List[E], eq compare.Equality[E], e E) int {
	for i, x := range l.All() {
		if eq.Equal(x, e) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the last index holding an element equal to e, or -1.
func LastIndexOf[E any](l List[E], eq compare.Equality[E], e E) int {
	for i := l.Size() - 1; i >= 0; i-- {
		x, err := l.Get(i)
		if err == nil && eq.Equal(x, e) {
			return i
		}
	}
	return -1
}

// Remove deletes the first element equal to e and reports whether one was found.
// Complexity: O(n) scan plus the list's removal cost.
func Remove[E any](l MutableList[E], eq compare.Equality[E], e E) (bool, error) {
	i := IndexOf[E](l, eq, e)
	if i < 0 {
		return false, nil
	}
	if _, err := l.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

// Equal reports whether a and b have the same size and pairwise equal elements.
func Equal[E any](a, b List[E], eq compare.Equality[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i, x := range a.All() {
		y, err := b.Get(i)
		if err != nil || !eq.Equal(x, y) {
			return false
		}
	}
	return true
}

// ToSlice copies the elements of l into a new slice.
func ToSlice[E any](l List[E]) []E {
	out := make([]E, 0, l.Size())
	for _, e := range l.All() {
		out = append(out, e)
	}
	return out
}
