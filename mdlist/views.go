package mdlist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kone/shape"
)

// MDList1 is a rank-1 view of an MD list.
type MDList1[E any] struct {
	MDList[E]
}

var (
	_ MDList[int] = (*MDList1[int])(nil)
	_ MDList[int] = (*MDList2[int])(nil)
)

// AsMDList1 views m as rank 1. If m already is an *MDList1 it is returned
// as is.
func AsMDList1[E any](m MDList[E]) (*MDList1[E], error) {
	if v, ok := m.(*MDList1[E]); ok {
		return v, nil
	}
	if r := m.Shape().Rank(); r != 1 {
		return nil, fmt.Errorf("AsMDList1: rank %d: %w", r, shape.ErrRankMismatch)
	}
	return &MDList1[E]{MDList: m}, nil
}

// Unwrap returns the underlying MD list.
func (v *MDList1[E]) Unwrap() MDList[E] { return v.MDList }

// Len returns the number of elements.
func (v *MDList1[E]) Len() int { return v.Size() }

// At returns element i.
func (v *MDList1[E]) At(i int) (E, error) { return v.Get(shape.Index{i}) }

// SetAt replaces element i. It returns errors.ErrUnsupported when the
// underlying list is not settable.
func (v *MDList1[E]) SetAt(i int, e E) error {
	s, ok := v.MDList.(SettableMDList[E])
	if !ok {
		return fmt.Errorf("MDList1.SetAt: %w", errors.ErrUnsupported)
	}
	return s.Set(shape.Index{i}, e)
}

// MDList2 is a rank-2 view of an MD list, addressed by row and column.
type MDList2[E any] struct {
	MDList[E]
}

// AsMDList2 views m as rank 2. If m already is an *MDList2 it is returned
// as is.
func AsMDList2[E any](m MDList[E]) (*MDList2[E], error) {
	if v, ok := m.(*MDList2[E]); ok {
		return v, nil
	}
	if r := m.Shape().Rank(); r != 2 {
		return nil, fmt.Errorf("AsMDList2: rank %d: %w", r, shape.ErrRankMismatch)
	}
	return &MDList2[E]{MDList: m}, nil
}

// Unwrap returns the underlying MD list.
func (v *MDList2[E]) Unwrap() MDList[E] { return v.MDList }

// Rows returns the extent of dimension 0.
func (v *MDList2[E]) Rows() int { return v.Shape().Dims()[0] }

// Cols returns the extent of dimension 1.
func (v *MDList2[E]) Cols() int { return v.Shape().Dims()[1] }

// At returns the element at (row, col).
func (v *MDList2[E]) At(row, col int) (E, error) { return v.Get(shape.Index{row, col}) }

// SetAt replaces the element at (row, col). It returns errors.ErrUnsupported
// when the underlying list is not settable.
func (v *MDList2[E]) SetAt(row, col int, e E) error {
	s, ok := v.MDList.(SettableMDList[E])
	if !ok {
		return fmt.Errorf("MDList2.SetAt: %w", errors.ErrUnsupported)
	}
	return s.Set(shape.Index{row, col}, e)
}

// NewArray1 returns an eager rank-1 list of n elements gen(i).
func NewArray1[E any](n int, gen func(i int) E, opts ...Option) (*MDList1[E], error) {
	s, err := shape.New(n)
	if err != nil {
		return nil, err
	}
	a, err := NewArray(s, wrap1(gen), opts...)
	if err != nil {
		return nil, err
	}
	return &MDList1[E]{MDList: a}, nil
}

// NewArray2 returns an eager rows x cols list with elements gen(row, col).
func NewArray2[E any](rows, cols int, gen func(row, col int) E, opts ...Option) (*MDList2[E], error) {
	s, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	a, err := NewArray(s, wrap2(gen), opts...)
	if err != nil {
		return nil, err
	}
	return &MDList2[E]{MDList: a}, nil
}

// NewLazy2 returns a memoizing rows x cols list over gen.
func NewLazy2[E any](rows, cols int, gen func(row, col int) E, opts ...Option) (*MDList2[E], error) {
	s, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	l, err := NewLazy(s, wrap2(gen), opts...)
	if err != nil {
		return nil, err
	}
	return &MDList2[E]{MDList: l}, nil
}

// NewVirtual2 returns a computed rows x cols list over gen.
func NewVirtual2[E any](rows, cols int, gen func(row, col int) E, opts ...Option) (*MDList2[E], error) {
	s, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	v, err := NewVirtual(s, wrap2(gen), opts...)
	if err != nil {
		return nil, err
	}
	return &MDList2[E]{MDList: v}, nil
}

func wrap1[E any](gen func(i int) E) Generator[E] {
	if gen == nil {
		return nil
	}
	return func(index shape.Index) E { return gen(index[0]) }
}

func wrap2[E any](gen func(row, col int) E) Generator[E] {
	if gen == nil {
		return nil
	}
	return func(index shape.Index) E { return gen(index[0], index[1]) }
}
