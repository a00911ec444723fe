package mdlist

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/shape"
)

// Sentinel errors for MD list operations.
var (
	// ErrShapeMismatch indicates two MD lists that must share a shape do not.
	ErrShapeMismatch = errors.New("mdlist: shape mismatch")

	// ErrNilGenerator indicates a Lazy or Virtual list constructed without a generator.
	ErrNilGenerator = errors.New("mdlist: nil generator")
)

// MDList is a read-only N-dimensional list.
type MDList[E any] interface {
	// Shape returns the extents of the list.
	Shape() shape.Shape

	// Size returns the number of elements, Shape().Size().
	Size() int

	// Get returns the element at index.
	Get(index shape.Index) (E, error)

	// All yields index/element pairs in offset order.
	All() iter.Seq2[shape.Index, E]
}

// SettableMDList is an MDList whose elements can be replaced.
type SettableMDList[E any] interface {
	MDList[E]

	// Set replaces the element at index.
	Set(index shape.Index, e E) error
}

// Generator produces the element for an index.
type Generator[E any] func(index shape.Index) E

// Options selects the layout of a new MD list.
type Options struct {
	// Order is the traversal order; nil means column-first from Cache.
	Order shape.Order

	// Cache supplies column-first strides; nil means shape.DefaultCache.
	Cache *shape.Cache
}

// Option mutates Options.
type Option func(*Options)

// WithOrder lays the list out in order, fastest dimension first.
func WithOrder(order shape.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithCache takes column-first strides from c instead of shape.DefaultCache.
func WithCache(c *shape.Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// stridesFor resolves the strides of s under opts.
func stridesFor(s shape.Shape, opts []Option) (*shape.Strides, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Order != nil {
		return shape.NewStrides(s, o.Order)
	}
	if o.Cache != nil {
		return o.Cache.Strides(s), nil
	}
	return shape.StridesOf(s), nil
}

// layout is the part every implementation shares.
type layout struct {
	st *shape.Strides
}

// Shape returns the extents of the list.
func (l layout) Shape() shape.Shape { return l.st.Shape() }

// Size returns the number of elements.
func (l layout) Size() int { return l.st.LinearSize() }

// Strides returns the layout mapping indices to flat offsets.
func (l layout) Strides() *shape.Strides { return l.st }

// offsetOf maps index to an offset with the calling method named in errors.
func (l layout) offsetOf(method string, index shape.Index) (int, error) {
	off, err := l.st.Offset(index)
	if err != nil {
		return 0, fmt.Errorf("%s(%v): %w", method, []int(index), err)
	}
	return off, nil
}

// allOf yields the index/element pairs of st in offset order, reading each
// element through at.
func allOf[E any](st *shape.Strides, at func(offset int) E) iter.Seq2[shape.Index, E] {
	return func(yield func(shape.Index, E) bool) {
		off := 0
		for index := range shape.NewIndexer(st).All() {
			if !yield(index, at(off)) {
				return
			}
			off++
		}
	}
}
