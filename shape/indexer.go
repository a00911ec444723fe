package shape

import (
	"iter"
	"slices"
)

// Indexer enumerates the indices of a Strides in offset order: the first
// dimension of the order varies fastest.
type Indexer struct {
	st *Strides
}

// NewIndexer returns an Indexer over st.
func NewIndexer(st *Strides) *Indexer { return &Indexer{st: st} }

// First returns the all-zero index, or false if the shape is empty.
func (ix *Indexer) First() (Index, bool) {
	if ix.st.LinearSize() == 0 {
		return nil, false
	}
	return make(Index, ix.st.shape.Rank()), true
}

// Next returns the index following index, or false after the last one or
// when index has the wrong rank. index itself is not modified.
// Complexity: amortized O(1), O(rank) worst case.
func (ix *Indexer) Next(index Index) (Index, bool) {
	if len(index) != ix.st.shape.Rank() {
		return nil, false
	}
	next := slices.Clone(index)
	for _, d := range ix.st.order {
		next[d]++
		if next[d] < ix.st.shape.dims[d] {
			return next, true
		}
		next[d] = 0
	}
	return nil, false
}

// All yields every index once, each in a fresh slice. The sequence can be
// ranged over any number of times.
func (ix *Indexer) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for index, ok := ix.First(); ok; index, ok = ix.Next(index) {
			if !yield(index) {
				return
			}
		}
	}
}
