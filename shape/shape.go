package shape

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Shape is an immutable list of dimension extents. The zero Shape has rank 0
// and holds exactly one element.
type Shape struct {
	dims []int
	size int // product of dims; 0 means "unset" only for the zero value
}

// New returns the shape with the given extents. Extents may be zero.
func New(dims ...int) (Shape, error) {
	size := 1
	for d, n := range dims {
		if n < 0 {
			return Shape{}, fmt.Errorf("shape.New: dimension %d has extent %d: %w", d, n, ErrBadShape)
		}
		if n > 0 && size > math.MaxInt/n {
			return Shape{}, fmt.Errorf("shape.New(%v): size overflows int: %w", dims, ErrBadShape)
		}
		size *= n
	}
	return Shape{dims: slices.Clone(dims), size: size}, nil
}

// MustNew is New for extents known to be valid; it panics otherwise.
func MustNew(dims ...int) Shape {
	s, err := New(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s.dims) }

// Dim returns the extent of dimension d.
func (s Shape) Dim(d int) (int, error) {
	if d < 0 || d >= len(s.dims) {
		return 0, fmt.Errorf("Shape.Dim(%d) of rank %d: %w", d, len(s.dims), ErrRankMismatch)
	}
	return s.dims[d], nil
}

// Dims returns a copy of the extents.
func (s Shape) Dims() []int { return slices.Clone(s.dims) }

// Size returns the number of elements, the product of the extents.
func (s Shape) Size() int {
	if s.dims == nil {
		return 1
	}
	return s.size
}

// Equal reports whether s and o have the same extents.
func (s Shape) Equal(o Shape) bool { return slices.Equal(s.dims, o.dims) }

// Key returns a string that is equal for equal shapes, suitable as a map key.
func (s Shape) Key() string {
	parts := make([]string, len(s.dims))
	for i, n := range s.dims {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "x")
}

// String renders s as "Shape(2, 3)".
func (s Shape) String() string { return "Shape(" + strings.ReplaceAll(s.Key(), "x", ", ") + ")" }

// LogValue implements slog.LogValuer.
func (s Shape) LogValue() slog.Value {
	return slog.GroupValue(slog.String("dims", s.Key()), slog.Int("size", s.Size()))
}
