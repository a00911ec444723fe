// Package iterator defines the cursor protocol shared by every list in this
// module.
//
// A cursor sits between elements, like a text caret: its position is in
// [0, size]. Next returns the element after the caret and moves right; Previous
// returns the element before it and moves left. The capabilities are split into
// small interfaces and composed:
//
//	Iterator        HasNext, Next
//	Linear          + HasPrevious, Previous, NextIndex, PreviousIndex
//	Settable        Set: replace the element last returned
//	Extendable      Add: insert before the caret, caret moves past it
//	Removable       Remove: delete the element last returned
//
//	SettableLinear  = Linear + Settable
//	MutableLinear   = Linear + Settable + Extendable + Removable
//
// Cursors produced by this module are fail-fast: a structural change to the
// underlying container that was not made through the cursor itself makes the
// cursor's next call return ErrConcurrentModification.
package iterator

import (
	"errors"
	"iter"
)

// Sentinel errors of the cursor protocol.
var (
	// ErrNoSuchElement is returned by Next or Previous when the caret is at the
	// respective end.
	ErrNoSuchElement = errors.New("iterator: no such element")

	// ErrNoCurrentElement is returned by Set or Remove when no element has been
	// returned since the cursor was created or since its last Add or Remove.
	ErrNoCurrentElement = errors.New("iterator: no current element")

	// ErrConcurrentModification is returned when the container was structurally
	// modified behind the cursor's back.
	ErrConcurrentModification = errors.New("iterator: container modified during iteration")
)

// Iterator is a forward-only cursor.
type Iterator[E any] interface {
	HasNext() bool
	Next() (E, error)
}

// Linear is a bidirectional cursor that knows its position.
type Linear[E any] interface {
	Iterator[E]
	HasPrevious() bool
	Previous() (E, error)
	// NextIndex is the index of the element Next would return.
	NextIndex() int
	// PreviousIndex is the index of the element Previous would return, -1 at the start.
	PreviousIndex() int
}

// Settable replaces the element most recently returned by Next or Previous.
type Settable[E any] interface {
	Set(e E) error
}

// Extendable inserts before the caret.
type Extendable[E any] interface {
	Add(e E) error
}

// Removable deletes the element most recently returned by Next or Previous.
type Removable interface {
	Remove() error
}

// SettableLinear is a Linear cursor that can replace elements in place.
type SettableLinear[E any] interface {
	Linear[E]
	Settable[E]
}

// MutableLinear is the full cursor used by mutable lists.
type MutableLinear[E any] interface {
	Linear[E]
	Settable[E]
	Extendable[E]
	Removable
}

// Collect drains it into a new slice.
func Collect[E any](it Iterator[E]) ([]E, error) {
	var out []E
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Seq adapts it to a range-over-func sequence. Iteration stops silently at the
// first error; use Collect when errors must be observed.
func Seq[E any](it Iterator[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e) {
				return
			}
		}
	}
}

// sliceCursor is a read-only Linear cursor over a slice.
type sliceCursor[E any] struct {
	s     []E
	caret int
}

// Slice returns a read-only cursor over s positioned before its first element.
func Slice[E any](s []E) Linear[E] {
	return &sliceCursor[E]{s: s}
}

func (c *sliceCursor[E]) HasNext() bool     { return c.caret < len(c.s) }
func (c *sliceCursor[E]) HasPrevious() bool { return c.caret > 0 }
func (c *sliceCursor[E]) NextIndex() int    { return c.caret }
func (c *sliceCursor[E]) PreviousIndex() int {
	return c.caret - 1
}

func (c *sliceCursor[E]) Next() (E, error) {
	if !c.HasNext() {
		var zero E
		return zero, ErrNoSuchElement
	}
	e := c.s[c.caret]
	c.caret++
	return e, nil
}

func (c *sliceCursor[E]) Previous() (E, error) {
	if !c.HasPrevious() {
		var zero E
		return zero, ErrNoSuchElement
	}
	c.caret--
	return c.s[c.caret], nil
}
