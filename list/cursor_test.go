package list_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kone/iterator"
	"github.com/katalvlaran/kone/list"
)

func TestCursor_ForwardAndBack(t *testing.T) {
	l := list.Of("a", "b", "c")
	it := l.Iterator()

	require.False(t, it.HasPrevious())
	require.Equal(t, -1, it.PreviousIndex())

	got, err := iterator.Collect[string](it)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.Equal(t, 3, it.NextIndex())

	_, err = it.Next()
	require.ErrorIs(t, err, iterator.ErrNoSuchElement)

	v, err := it.Previous()
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Equal(t, 2, it.NextIndex())
}

func TestCursor_IteratorFromBounds(t *testing.T) {
	l := list.Of(1, 2, 3)
	it, err := l.IteratorFrom(3)
	require.NoError(t, err)
	require.False(t, it.HasNext())

	_, err = l.IteratorFrom(4)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
	_, err = l.IteratorFrom(-1)
	require.ErrorIs(t, err, list.ErrIndexOutOfRange)
}

func TestCursor_SetReplacesLastReturned(t *testing.T) {
	l := list.Of(1, 2, 3)
	it, err := l.SettableIteratorFrom(0)
	require.NoError(t, err)

	require.ErrorIs(t, it.Set(0), iterator.ErrNoCurrentElement)

	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Set(v*10))
	}
	// Going backwards, Set hits the element Previous returned.
	_, _ = it.Previous()
	require.NoError(t, it.Set(-1))

	require.Equal(t, []int{10, 20, -1}, list.ToSlice[int](l))
}

func TestCursor_AddInsertsBeforeCaret(t *testing.T) {
	l := list.Of(1, 3)
	it, err := l.MutableIteratorFrom(1)
	require.NoError(t, err)

	require.NoError(t, it.Add(2))
	require.Equal(t, 2, it.NextIndex())
	require.ErrorIs(t, it.Remove(), iterator.ErrNoCurrentElement, "Add clears the current element")

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, []int{1, 2, 3}, list.ToSlice[int](l))
}

func TestCursor_RemoveDuringTraversal(t *testing.T) {
	l := list.EmptyLinkedArrayList[int]()
	require.NoError(t, l.AddAll(1, 2, 3, 4, 5, 6))

	it, err := l.MutableIteratorFrom(0)
	require.NoError(t, err)
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
		}
	}
	require.Equal(t, []int{1, 3, 5}, list.ToSlice[int](l))

	// Remove after Previous keeps the caret on the same gap.
	_, _ = it.Previous()
	require.NoError(t, it.Remove())
	require.Equal(t, 2, it.NextIndex())
	require.Equal(t, []int{1, 3}, list.ToSlice[int](l))
}

func TestCursor_FailFast(t *testing.T) {
	l := list.Of(1, 2, 3)
	it := l.Iterator()
	_, err := it.Next()
	require.NoError(t, err)

	require.NoError(t, l.Add(4))

	_, err = it.Next()
	require.ErrorIs(t, err, iterator.ErrConcurrentModification)
	_, err = it.Previous()
	require.ErrorIs(t, err, iterator.ErrConcurrentModification)
}

func TestCursor_SetIsNotStructural(t *testing.T) {
	l := list.Of(1, 2, 3)
	before := list.ModCount(l)
	it := l.Iterator()

	require.NoError(t, l.Set(1, 20))
	require.Equal(t, before, list.ModCount(l))

	got, err := iterator.Collect[int](it)
	require.NoError(t, err)
	require.Equal(t, []int{1, 20, 3}, got)
}

func TestCursor_OwnChangesKeepCursorValid(t *testing.T) {
	l := list.Of(1, 2, 3)
	a, _ := l.MutableIteratorFrom(0)
	b := l.Iterator()

	_, _ = a.Next()
	require.NoError(t, a.Remove())

	// a remains usable, b was invalidated by a's change.
	v, err := a.Next()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	_, err = b.Next()
	require.ErrorIs(t, err, iterator.ErrConcurrentModification)
}

func TestCursor_UnsupportedCapabilities(t *testing.T) {
	fixed, err := list.NewSettableArrayList(2, func(i int) int { return i })
	require.NoError(t, err)
	it := fixed.Iterator()
	_, _ = it.Next()

	// The cursor type is shared; a fixed-size list cannot grow or shrink.
	m, ok := it.(iterator.MutableLinear[int])
	require.True(t, ok)
	require.True(t, errors.Is(m.Add(5), errors.ErrUnsupported))
	require.True(t, errors.Is(m.Remove(), errors.ErrUnsupported))
	require.NoError(t, m.Set(9))

	virtual, _ := list.NewVirtualList(2, func(i int) int { return i })
	vm := virtual.Iterator().(iterator.MutableLinear[int])
	require.ErrorIs(t, vm.Set(1), errors.ErrUnsupported)
}

func TestCursor_FixedCapacityAddOverflow(t *testing.T) {
	l, _ := list.FixedCapacityListOf(2, 2, func(i int) int { return i })
	it, err := l.MutableIteratorFrom(1)
	require.NoError(t, err)

	require.ErrorIs(t, it.Add(7), list.ErrCapacityExceeded)
	require.Equal(t, 1, it.NextIndex(), "failed Add leaves the caret")
	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}
