package mdlist

import (
	"fmt"

	cerrors "cloudeng.io/errors"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/shape"
)

// Contains reports whether m holds an element equal to e under eq.
// Complexity: O(Size()).
func Contains[E any](m MDList[E], eq compare.Equality[E], e E) bool {
	for _, x := range m.All() {
		if eq.Equal(x, e) {
			return true
		}
	}
	return false
}

// Map returns an eager list of m's shape holding fn of each element.
func Map[E, F any](m MDList[E], fn func(E) F, opts ...Option) (*Array[F], error) {
	out, err := NewArray[F](m.Shape(), nil, opts...)
	if err != nil {
		return nil, err
	}
	for index, e := range m.All() {
		if err := out.Set(index, fn(e)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Zip combines a and b element by element into a new eager list. Both must
// have the same shape. Every element that cannot be read is reported.
func Zip[A, B, C any](a MDList[A], b MDList[B], fn func(A, B) C, opts ...Option) (*Array[C], error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("Zip(%v, %v): %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}
	out, err := NewArray[C](a.Shape(), nil, opts...)
	if err != nil {
		return nil, err
	}
	errs := cerrors.M{}
	for index, x := range a.All() {
		y, err := b.Get(index)
		if err != nil {
			errs.Append(err)
			continue
		}
		errs.Append(out.Set(index, fn(x, y)))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach calls fn for every element in offset order and stops at the first
// error, which it returns.
func ForEach[E any](m MDList[E], fn func(index shape.Index, e E) error) error {
	for index, e := range m.All() {
		if err := fn(index, e); err != nil {
			return err
		}
	}
	return nil
}

// ToSlice copies the elements of m in offset order.
func ToSlice[E any](m MDList[E]) []E {
	out := make([]E, 0, m.Size())
	for _, e := range m.All() {
		out = append(out, e)
	}
	return out
}
