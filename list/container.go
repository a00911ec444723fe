package list

import (
	"fmt"

	"github.com/emirpasic/gods/containers"
)

// container presents a MutableList through the gods containers.Container
// interface, so code written against gods can consume these lists.
type container[E any] struct {
	l MutableList[E]
}

// AsContainer returns a gods view of l. The view shares l's storage.
func AsContainer[E any](l MutableList[E]) containers.Container {
	return container[E]{l: l}
}

func (c container[E]) Empty() bool { return c.l.IsEmpty() }
func (c container[E]) Size() int   { return c.l.Size() }
func (c container[E]) Clear()      { c.l.Clear() }

func (c container[E]) Values() []interface{} {
	out := make([]interface{}, 0, c.l.Size())
	for _, e := range c.l.All() {
		out = append(out, e)
	}
	return out
}

func (c container[E]) String() string {
	return fmt.Sprintf("List%v", ToSlice[E](c.l))
}
