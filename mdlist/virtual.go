package mdlist

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/list"
	"github.com/katalvlaran/kone/shape"
)

// Virtual is an MD list that stores nothing and calls its generator on every
// access. Its flat view is a list.VirtualList over offsets.
type Virtual[E any] struct {
	layout
	flat *list.VirtualList[E]
}

var _ MDList[int] = (*Virtual[int])(nil)

// NewVirtual creates a Virtual list of shape s backed by gen.
func NewVirtual[E any](s shape.Shape, gen Generator[E], opts ...Option) (*Virtual[E], error) {
	if gen == nil {
		return nil, fmt.Errorf("NewVirtual(%v): %w", s, ErrNilGenerator)
	}
	st, err := stridesFor(s, opts)
	if err != nil {
		return nil, fmt.Errorf("NewVirtual: %w", err)
	}
	flat, err := list.NewVirtualList(st.LinearSize(), func(off int) E {
		index, _ := st.Index(off)
		return gen(index)
	})
	if err != nil {
		return nil, fmt.Errorf("NewVirtual: %w", err)
	}
	return &Virtual[E]{layout: layout{st: st}, flat: flat}, nil
}

// Get returns gen(index).
func (v *Virtual[E]) Get(index shape.Index) (E, error) {
	off, err := v.offsetOf("Virtual.Get", index)
	if err != nil {
		var zero E
		return zero, err
	}
	return v.flat.Get(off)
}

// All yields index/element pairs in offset order.
func (v *Virtual[E]) All() iter.Seq2[shape.Index, E] {
	return allOf(v.st, func(off int) E {
		e, _ := v.flat.Get(off)
		return e
	})
}

// Flat returns the list of elements in offset order.
func (v *Virtual[E]) Flat() list.List[E] { return v.flat }
