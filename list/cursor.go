package list

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kone/iterator"
)

// indexed is what a cursor needs from the list it walks.
type indexed[E any] interface {
	Size() int
	Get(index int) (E, error)
	// modCount is bumped on every structural modification (insert, remove, clear).
	modCount() int
}

type settableIndexed[E any] interface {
	indexed[E]
	Set(index int, e E) error
}

type mutableIndexed[E any] interface {
	settableIndexed[E]
	AddAt(index int, e E) error
	RemoveAt(index int) (E, error)
}

// cursor is the one cursor implementation behind every list in this package.
// The interface type it is returned as decides which capabilities a caller sees;
// capabilities the backing list does not have report errors.ErrUnsupported.
type cursor[E any] struct {
	l        indexed[E]
	caret    int // in [0, l.Size()]
	last     int // index of the element last returned, -1 if none
	expected int // l.modCount() this cursor believes in
}

func newCursor[E any](l indexed[E], from int) (*cursor[E], error) {
	if from < 0 || from > l.Size() {
		return nil, fmt.Errorf("IteratorFrom(%d) on size %d: %w", from, l.Size(), ErrIndexOutOfRange)
	}
	return &cursor[E]{l: l, caret: from, last: -1, expected: l.modCount()}, nil
}

func (c *cursor[E]) check() error {
	if c.l.modCount() != c.expected {
		return iterator.ErrConcurrentModification
	}
	return nil
}

func (c *cursor[E]) HasNext() bool     { return c.caret < c.l.Size() }
func (c *cursor[E]) HasPrevious() bool { return c.caret > 0 }
func (c *cursor[E]) NextIndex() int    { return c.caret }
func (c *cursor[E]) PreviousIndex() int {
	return c.caret - 1
}

func (c *cursor[E]) Next() (E, error) {
	var zero E
	if err := c.check(); err != nil {
		return zero, err
	}
	if c.caret >= c.l.Size() {
		return zero, iterator.ErrNoSuchElement
	}
	e, err := c.l.Get(c.caret)
	if err != nil {
		return zero, err
	}
	c.last = c.caret
	c.caret++
	return e, nil
}

func (c *cursor[E]) Previous() (E, error) {
	var zero E
	if err := c.check(); err != nil {
		return zero, err
	}
	if c.caret <= 0 {
		return zero, iterator.ErrNoSuchElement
	}
	e, err := c.l.Get(c.caret - 1)
	if err != nil {
		return zero, err
	}
	c.caret--
	c.last = c.caret
	return e, nil
}

func (c *cursor[E]) Set(e E) error {
	s, ok := c.l.(settableIndexed[E])
	if !ok {
		return errors.ErrUnsupported
	}
	if err := c.check(); err != nil {
		return err
	}
	if c.last < 0 {
		return iterator.ErrNoCurrentElement
	}
	return s.Set(c.last, e)
}

func (c *cursor[E]) Add(e E) error {
	m, ok := c.l.(mutableIndexed[E])
	if !ok {
		return errors.ErrUnsupported
	}
	if err := c.check(); err != nil {
		return err
	}
	if err := m.AddAt(c.caret, e); err != nil {
		return err
	}
	c.caret++
	c.last = -1
	c.expected = c.l.modCount()
	return nil
}

func (c *cursor[E]) Remove() error {
	m, ok := c.l.(mutableIndexed[E])
	if !ok {
		return errors.ErrUnsupported
	}
	if err := c.check(); err != nil {
		return err
	}
	if c.last < 0 {
		return iterator.ErrNoCurrentElement
	}
	if _, err := m.RemoveAt(c.last); err != nil {
		return err
	}
	if c.last < c.caret {
		c.caret--
	}
	c.last = -1
	c.expected = c.l.modCount()
	return nil
}

func linearFrom[E any](l indexed[E], from int) (iterator.Linear[E], error) {
	c, err := newCursor(l, from)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func settableFrom[E any](l settableIndexed[E], from int) (iterator.SettableLinear[E], error) {
	c, err := newCursor[E](l, from)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func mutableFrom[E any](l mutableIndexed[E], from int) (iterator.MutableLinear[E], error) {
	c, err := newCursor[E](l, from)
	if err != nil {
		return nil, err
	}
	return c, nil
}
