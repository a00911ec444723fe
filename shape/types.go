package shape

import "cloudeng.io/errors"

// Sentinel errors for shape operations.
var (
	ErrBadShape         = errors.New("shape: invalid shape")
	ErrBadOrder         = errors.New("shape: order is not a permutation of the dimensions")
	ErrRankMismatch     = errors.New("shape: rank mismatch")
	ErrIndexOutOfShape  = errors.New("shape: index out of shape")
	ErrOffsetOutOfRange = errors.New("shape: offset out of range")
)

// Index is a position in an N-dimensional shape, one component per dimension.
type Index []int

// Offsetting converts between indices of a shape and flat offsets.
type Offsetting interface {
	Shape() Shape
	Offset(index Index) (int, error)
	Index(offset int) (Index, error)
	LinearSize() int
}
