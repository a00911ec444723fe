package shape

import (
	"fmt"
	"log/slog"
	"slices"

	"cloudeng.io/errors"
)

// Strides is the layout of a Shape in a flat array. It is immutable and safe
// to share between goroutines.
type Strides struct {
	shape   Shape
	order   Order
	strides []int
}

// NewStrides lays s out in the given order. A nil order means ColumnFirst.
func NewStrides(s Shape, order Order) (*Strides, error) {
	rank := s.Rank()
	if order == nil {
		order = ColumnFirst(rank)
	}
	if err := order.validate(rank); err != nil {
		return nil, fmt.Errorf("NewStrides(%v): %w", s, err)
	}
	strides := make([]int, rank)
	step := 1
	for _, d := range order {
		strides[d] = step
		step *= s.dims[d]
	}
	return &Strides{shape: s, order: slices.Clone(order), strides: strides}, nil
}

// Shape returns the shape being laid out.
func (st *Strides) Shape() Shape { return st.shape }

// Order returns a copy of the traversal order.
func (st *Strides) Order() Order { return slices.Clone(st.order) }

// Stride returns the offset distance between neighbours along dimension d.
func (st *Strides) Stride(d int) (int, error) {
	if d < 0 || d >= len(st.strides) {
		return 0, fmt.Errorf("Strides.Stride(%d) of rank %d: %w", d, len(st.strides), ErrRankMismatch)
	}
	return st.strides[d], nil
}

// LinearSize returns the number of offsets, the shape's size.
func (st *Strides) LinearSize() int { return st.shape.Size() }

// Offset returns the flat offset of index. Every component outside its
// extent is reported.
func (st *Strides) Offset(index Index) (int, error) {
	if len(index) != len(st.strides) {
		return 0, fmt.Errorf("Strides.Offset(%v) on %v: %w", []int(index), st.shape, ErrRankMismatch)
	}
	errs := errors.M{}
	offset := 0
	for d, i := range index {
		if i < 0 || i >= st.shape.dims[d] {
			errs.Append(fmt.Errorf("component %d is %d, extent %d: %w", d, i, st.shape.dims[d], ErrIndexOutOfShape))
			continue
		}
		offset += i * st.strides[d]
	}
	if err := errs.Err(); err != nil {
		return 0, err
	}
	return offset, nil
}

// Index returns the index stored at offset, the inverse of Offset.
func (st *Strides) Index(offset int) (Index, error) {
	if offset < 0 || offset >= st.LinearSize() {
		return nil, fmt.Errorf("Strides.Index(%d) on %v: %w", offset, st.shape, ErrOffsetOutOfRange)
	}
	index := make(Index, len(st.strides))
	for k := len(st.order) - 1; k >= 0; k-- {
		d := st.order[k]
		index[d] = offset / st.strides[d]
		offset %= st.strides[d]
	}
	return index, nil
}

// LogValue implements slog.LogValuer.
func (st *Strides) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dims", st.shape.Key()),
		slog.Any("strides", st.strides),
		slog.Any("order", []int(st.order)),
	)
}
