package mdlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/kone/list"
	"github.com/katalvlaran/kone/shape"
)

// Array is an eager MD list: every element is stored.
type Array[E any] struct {
	layout
	data *list.SettableArrayList[E] // offset order, len == Size()
}

var _ SettableMDList[int] = (*Array[int])(nil)

// NewArray creates an Array of shape s whose element at index is gen(index).
// A nil gen leaves zero values.
// Stage 1 (Validate): resolve strides for s and opts.
// Stage 2 (Prepare): fill the backing list in offset order.
// Complexity: O(Size()) calls of gen.
func NewArray[E any](s shape.Shape, gen Generator[E], opts ...Option) (*Array[E], error) {
	st, err := stridesFor(s, opts)
	if err != nil {
		return nil, fmt.Errorf("NewArray: %w", err)
	}
	var fill func(int) E
	if gen != nil {
		fill = func(off int) E {
			index, _ := st.Index(off) // off < LinearSize by construction
			return gen(index)
		}
	}
	data, err := list.NewSettableArrayList(st.LinearSize(), fill)
	if err != nil {
		return nil, fmt.Errorf("NewArray: %w", err)
	}
	return &Array[E]{layout: layout{st: st}, data: data}, nil
}

// Get returns the element at index.
// Complexity: O(rank).
func (a *Array[E]) Get(index shape.Index) (E, error) {
	off, err := a.offsetOf("Array.Get", index)
	if err != nil {
		var zero E
		return zero, err
	}
	return a.data.Get(off)
}

// Set replaces the element at index.
// Complexity: O(rank).
func (a *Array[E]) Set(index shape.Index, e E) error {
	off, err := a.offsetOf("Array.Set", index)
	if err != nil {
		return err
	}
	return a.data.Set(off, e)
}

// All yields index/element pairs in offset order.
func (a *Array[E]) All() iter.Seq2[shape.Index, E] {
	return allOf(a.st, func(off int) E {
		e, _ := a.data.Get(off)
		return e
	})
}

// Backing returns the flat storage, in offset order.
func (a *Array[E]) Backing() list.SettableList[E] { return a.data }

// String renders the shape followed by the elements in offset order.
func (a *Array[E]) String() string {
	var sb strings.Builder
	sb.WriteString(a.Shape().String())
	sb.WriteString(a.data.String())
	return sb.String()
}
