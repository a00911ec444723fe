// Package heap_test contains unit and property tests for BinaryMinimumHeap.
package heap_test

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/heap"
)

func TestHeap_DecreaseKey(t *testing.T) {
	h := heap.New[string](compare.Natural[int]())
	a := h.Add("a", 5)
	h.Add("b", 2)
	h.Add("c", 8)

	n, err := h.PopMinimum()
	require.NoError(t, err)
	require.Equal(t, "b", n.Element())
	require.False(t, n.Attached())

	require.NoError(t, a.SetPriority(1))
	n, err = h.PopMinimum()
	require.NoError(t, err)
	require.Equal(t, "a", n.Element())
	require.Equal(t, 1, n.Priority())
}

func TestHeap_Empty(t *testing.T) {
	h := heap.New[string](compare.Natural[int]())
	require.True(t, h.IsEmpty())

	_, err := h.PopMinimum()
	require.ErrorIs(t, err, heap.ErrEmpty)
	_, err = h.Minimum()
	require.ErrorIs(t, err, heap.ErrEmpty)
}

func TestHeap_MinimumDoesNotRemove(t *testing.T) {
	h := heap.New[string](compare.Natural[float64]())
	h.Add("x", 2.5)
	h.Add("y", 0.5)

	n, err := h.Minimum()
	require.NoError(t, err)
	require.Equal(t, "y", n.Element())
	require.True(t, n.Attached())
	require.Equal(t, 2, h.Len())
}

func TestHeap_IncreaseKeySiftsDown(t *testing.T) {
	h := heap.New[string](compare.Natural[int]())
	root := h.Add("r", 0)
	h.Add("s", 3)
	h.Add("t", 4)

	require.NoError(t, root.SetPriority(10))
	n, _ := h.PopMinimum()
	require.Equal(t, "s", n.Element())
	n, _ = h.PopMinimum()
	require.Equal(t, "t", n.Element())
	n, _ = h.PopMinimum()
	require.Equal(t, "r", n.Element())
}

func TestHeap_DetachedNode(t *testing.T) {
	h := heap.New[int](compare.Natural[int]())
	n := h.Add(1, 1)
	_, err := h.PopMinimum()
	require.NoError(t, err)

	require.ErrorIs(t, n.SetPriority(0), heap.ErrDetachedNode)
	require.ErrorIs(t, h.Remove(n), heap.ErrDetachedNode)
	require.ErrorIs(t, h.Remove(nil), heap.ErrDetachedNode)

	other := heap.New[int](compare.Natural[int]())
	m := other.Add(2, 2)
	require.ErrorIs(t, h.Remove(m), heap.ErrDetachedNode, "node of another heap")
}

func TestHeap_RemoveInterior(t *testing.T) {
	h := heap.New[string](compare.Natural[int]())
	nodes := map[string]*heap.Node[string, int]{}
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		nodes[s] = h.Add(s, i)
	}
	require.NoError(t, h.Remove(nodes["b"]))
	require.NoError(t, h.Remove(nodes["e"]))
	require.False(t, nodes["b"].Attached())

	var got []string
	for !h.IsEmpty() {
		n, err := h.PopMinimum()
		require.NoError(t, err)
		got = append(got, n.Element())
	}
	require.Equal(t, []string{"a", "c", "d", "f", "g"}, got)
}

func TestHeap_ClearDetaches(t *testing.T) {
	h := heap.New[int](compare.Natural[int](), heap.WithCapacity(100))
	require.Equal(t, 128, h.Capacity())
	n := h.Add(1, 1)
	h.Clear()

	require.True(t, h.IsEmpty())
	require.False(t, n.Attached())
	require.Equal(t, 2, h.Capacity())
}

func TestHeap_CapacityFollowsGrowthPolicy(t *testing.T) {
	h := heap.New[int](compare.Natural[int]())
	for i := 0; i < 9; i++ {
		h.Add(i, i)
	}
	require.Equal(t, 16, h.Capacity())
	for i := 0; i < 6; i++ {
		_, _ = h.PopMinimum()
	}
	require.Equal(t, 3, h.Len())
	require.Equal(t, 8, h.Capacity())
}

func TestHeap_GodsComparatorAndAll(t *testing.T) {
	// A max-heap through a reversed gods comparator.
	order := compare.Reverse(compare.FromComparator[int](utils.IntComparator))
	h := heap.New[string](order)
	h.Add("low", 1)
	h.Add("high", 9)
	h.Add("mid", 5)

	n, _ := h.Minimum()
	require.Equal(t, "high", n.Element())

	prios := map[string]int{}
	for e, p := range h.All() {
		prios[e] = p
	}
	require.Equal(t, map[string]int{"low": 1, "high": 9, "mid": 5}, prios)
}

func TestHeapProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("pops come out in non-decreasing priority", prop.ForAll(
		func(prios []int) bool {
			h := heap.New[int](compare.Natural[int]())
			for i, p := range prios {
				h.Add(i, p)
			}
			var got []int
			for !h.IsEmpty() {
				n, err := h.PopMinimum()
				if err != nil {
					return false
				}
				got = append(got, n.Priority())
			}
			want := slices.Clone(prios)
			slices.Sort(want)
			return slices.Equal(got, want)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("priority changes keep the minimum correct", prop.ForAll(
		func(prios []int, changes []int) bool {
			if len(prios) == 0 {
				return true
			}
			h := heap.New[int](compare.Natural[int]())
			nodes := make([]*heap.Node[int, int], len(prios))
			current := slices.Clone(prios)
			for i, p := range prios {
				nodes[i] = h.Add(i, p)
			}
			for k, c := range changes {
				i := k % len(nodes)
				if nodes[i].SetPriority(c) != nil {
					return false
				}
				current[i] = c
				m, err := h.Minimum()
				if err != nil || m.Priority() != slices.Min(current) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}
