package mdlist

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/kone/shape"
)

// cell memoizes one element of a Lazy list.
type cell[E any] struct {
	computed bool
	value    E
}

// Lazy is an MD list whose elements are generated on first access and kept.
type Lazy[E any] struct {
	layout
	gen      Generator[E]
	cells    []cell[E] // offset order
	computed int
}

var _ SettableMDList[int] = (*Lazy[int])(nil)

// NewLazy creates a Lazy list of shape s backed by gen. Nothing is generated
// until an element is read.
func NewLazy[E any](s shape.Shape, gen Generator[E], opts ...Option) (*Lazy[E], error) {
	if gen == nil {
		return nil, fmt.Errorf("NewLazy(%v): %w", s, ErrNilGenerator)
	}
	st, err := stridesFor(s, opts)
	if err != nil {
		return nil, fmt.Errorf("NewLazy: %w", err)
	}
	return &Lazy[E]{layout: layout{st: st}, gen: gen, cells: make([]cell[E], st.LinearSize())}, nil
}

// at returns the element at off, generating it if needed.
func (l *Lazy[E]) at(off int, index shape.Index) E {
	c := &l.cells[off]
	if !c.computed {
		c.value = l.gen(index)
		c.computed = true
		l.computed++
	}
	return c.value
}

// Get returns the element at index, calling the generator on first access only.
func (l *Lazy[E]) Get(index shape.Index) (E, error) {
	off, err := l.offsetOf("Lazy.Get", index)
	if err != nil {
		var zero E
		return zero, err
	}
	return l.at(off, index), nil
}

// Set stores e at index; the generator will not be called for it afterwards.
func (l *Lazy[E]) Set(index shape.Index, e E) error {
	off, err := l.offsetOf("Lazy.Set", index)
	if err != nil {
		return err
	}
	c := &l.cells[off]
	if !c.computed {
		c.computed = true
		l.computed++
	}
	c.value = e
	return nil
}

// Computed returns how many elements have been generated or set so far.
func (l *Lazy[E]) Computed() int { return l.computed }

// All yields index/element pairs in offset order, generating as it goes.
func (l *Lazy[E]) All() iter.Seq2[shape.Index, E] {
	return func(yield func(shape.Index, E) bool) {
		off := 0
		for index := range shape.NewIndexer(l.st).All() {
			if !yield(index, l.at(off, index)) {
				return
			}
			off++
		}
	}
}
