package set

// Union adds every element of b to a and returns how many were new.
func Union[E any](a, b Set[E]) int {
	n := 0
	for e := range b.All() {
		if a.Add(e) {
			n++
		}
	}
	return n
}

// Intersect removes from a every element not in b and returns how many went.
func Intersect[E any](a, b Set[E]) int {
	var drop []E
	for e := range a.All() {
		if !b.Contains(e) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		a.Remove(e)
	}
	return len(drop)
}

// Difference removes from a every element of b and returns how many went.
// a and b may be the same set.
func Difference[E any](a, b Set[E]) int {
	var drop []E
	for e := range b.All() {
		drop = append(drop, e)
	}
	n := 0
	for _, e := range drop {
		if a.Remove(e) {
			n++
		}
	}
	return n
}

// IsSubset reports whether every element of a is in b.
func IsSubset[E any](a, b Set[E]) bool {
	if a.Size() > b.Size() {
		return false
	}
	for e := range a.All() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same elements.
func Equal[E any](a, b Set[E]) bool {
	return a.Size() == b.Size() && IsSubset(a, b)
}
