package shape

import "fmt"

// Order lists dimensions from the fastest varying to the slowest.
type Order []int

// ColumnFirst returns the order in which dimension 0 varies fastest.
func ColumnFirst(rank int) Order {
	o := make(Order, rank)
	for i := range o {
		o[i] = i
	}
	return o
}

// RowFirst returns the order in which the last dimension varies fastest.
func RowFirst(rank int) Order {
	o := make(Order, rank)
	for i := range o {
		o[i] = rank - 1 - i
	}
	return o
}

// validate checks that o is a permutation of [0, rank).
func (o Order) validate(rank int) error {
	if len(o) != rank {
		return fmt.Errorf("order %v for rank %d: %w", []int(o), rank, ErrBadOrder)
	}
	seen := make([]bool, rank)
	for _, d := range o {
		if d < 0 || d >= rank || seen[d] {
			return fmt.Errorf("order %v for rank %d: %w", []int(o), rank, ErrBadOrder)
		}
		seen[d] = true
	}
	return nil
}
