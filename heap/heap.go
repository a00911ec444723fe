package heap

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/growth"
)

// Node is a handle on one heap entry.
type Node[E, P any] struct {
	element  E
	priority P
	index    int                     // slot in h.nodes; -1 once detached, but only h is checked
	h        *BinaryMinimumHeap[E, P] // nil once detached
}

// Element returns the entry's element.
func (n *Node[E, P]) Element() E { return n.element }

// Priority returns the entry's current priority.
func (n *Node[E, P]) Priority() P { return n.priority }

// Attached reports whether the entry is still in a heap.
func (n *Node[E, P]) Attached() bool { return n.h != nil }

// SetPriority changes the entry's priority and sifts it up or down.
func (n *Node[E, P]) SetPriority(p P) error {
	if n.h == nil {
		return fmt.Errorf("Node.SetPriority: %w", ErrDetachedNode)
	}
	n.priority = p
	n.h.fix(n.index)
	return nil
}

// String renders the node as "element@priority".
func (n *Node[E, P]) String() string { return fmt.Sprintf("%v@%v", n.element, n.priority) }

// BinaryMinimumHeap is a min-heap ordered by priority.
type BinaryMinimumHeap[E, P any] struct {
	order compare.Order[P]
	nodes []*Node[E, P] // len(nodes) is the capacity
	size  int
	floor int
}

// New returns an empty heap whose priorities are compared with order.
func New[E, P any](order compare.Order[P], opts ...Option) *BinaryMinimumHeap[E, P] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	floor := growth.PowerOf2GreaterOrEqualTo(growth.MinCapacity)
	capacity := growth.PowerOf2GreaterOrEqualTo(max(o.Capacity, floor))
	return &BinaryMinimumHeap[E, P]{order: order, nodes: make([]*Node[E, P], capacity), floor: floor}
}

// Len returns the number of entries.
func (h *BinaryMinimumHeap[E, P]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *BinaryMinimumHeap[E, P]) IsEmpty() bool { return h.size == 0 }

// Capacity returns the length of the backing array.
func (h *BinaryMinimumHeap[E, P]) Capacity() int { return len(h.nodes) }

// Add inserts element with priority and returns its handle.
func (h *BinaryMinimumHeap[E, P]) Add(element E, priority P) *Node[E, P] {
	if n := growth.Grow(len(h.nodes), h.size+1); n != len(h.nodes) {
		h.resize(n)
	}
	n := &Node[E, P]{element: element, priority: priority, index: h.size, h: h}
	h.nodes[h.size] = n
	h.size++
	h.up(n.index)
	return n
}

// Minimum returns the root without removing it.
func (h *BinaryMinimumHeap[E, P]) Minimum() (*Node[E, P], error) {
	if h.size == 0 {
		return nil, fmt.Errorf("BinaryMinimumHeap.Minimum: %w", ErrEmpty)
	}
	return h.nodes[0], nil
}

// PopMinimum removes and returns the root. The returned node is detached.
func (h *BinaryMinimumHeap[E, P]) PopMinimum() (*Node[E, P], error) {
	if h.size == 0 {
		return nil, fmt.Errorf("BinaryMinimumHeap.PopMinimum: %w", ErrEmpty)
	}
	return h.removeAt(0), nil
}

// Remove takes n out of the heap wherever it sits.
func (h *BinaryMinimumHeap[E, P]) Remove(n *Node[E, P]) error {
	if n == nil || n.h != h {
		return fmt.Errorf("BinaryMinimumHeap.Remove: %w", ErrDetachedNode)
	}
	h.removeAt(n.index)
	return nil
}

// Clear detaches every entry and returns the backing array to its floor.
func (h *BinaryMinimumHeap[E, P]) Clear() {
	for i := 0; i < h.size; i++ {
		h.nodes[i].h = nil
	}
	h.nodes = make([]*Node[E, P], h.floor)
	h.size = 0
}

// All yields element/priority pairs in backing-array order, which is not
// priority order.
func (h *BinaryMinimumHeap[E, P]) All() iter.Seq2[E, P] {
	return func(yield func(E, P) bool) {
		for i := 0; i < h.size; i++ {
			if !yield(h.nodes[i].element, h.nodes[i].priority) {
				return
			}
		}
	}
}

// LogValue implements slog.LogValuer.
func (h *BinaryMinimumHeap[E, P]) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("size", h.size), slog.Int("capacity", len(h.nodes))}
	if h.size > 0 {
		attrs = append(attrs, slog.Any("minimum", h.nodes[0].priority))
	}
	return slog.GroupValue(attrs...)
}

func (h *BinaryMinimumHeap[E, P]) less(i, j int) bool {
	return h.order.Compare(h.nodes[i].priority, h.nodes[j].priority) < 0
}

func (h *BinaryMinimumHeap[E, P]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].index = i
	h.nodes[j].index = j
}

// up moves the entry at i towards the root and returns its final slot.
func (h *BinaryMinimumHeap[E, P]) up(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return i
}

// down moves the entry at i towards the leaves.
func (h *BinaryMinimumHeap[E, P]) down(i int) {
	for {
		smallest := i
		if l := 2*i + 1; l < h.size && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < h.size && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// fix restores the invariant after the priority at i changed in either direction.
func (h *BinaryMinimumHeap[E, P]) fix(i int) {
	if h.up(i) == i {
		h.down(i)
	}
}

// removeAt detaches the entry at i, moves the last entry into its slot and
// restores the invariant.
func (h *BinaryMinimumHeap[E, P]) removeAt(i int) *Node[E, P] {
	n := h.nodes[i]
	last := h.size - 1
	if i != last {
		h.swap(i, last)
	}
	h.nodes[last] = nil
	h.size--
	if i < h.size {
		h.fix(i)
	}
	n.h = nil
	n.index = -1
	if c := growth.Shrink(len(h.nodes), h.size, h.floor); c != len(h.nodes) {
		h.resize(c)
	}
	return n
}

func (h *BinaryMinimumHeap[E, P]) resize(capacity int) {
	nodes := make([]*Node[E, P], capacity)
	copy(nodes, h.nodes[:h.size])
	h.nodes = nodes
}
