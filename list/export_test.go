package list

// ShiftCount exposes the number of elements a LinkedArrayList has moved during
// interior inserts and removals.
func ShiftCount[E any](l *LinkedArrayList[E]) int { return l.shifted }

// ModCount exposes the structural modification counter of a list.
func ModCount(l interface{ modCount() int }) int { return l.modCount() }
