package list_test

import (
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/list"
)

func TestHelpers_Search(t *testing.T) {
	l := list.Of("a", "b", "a", "c")
	eq := compare.Comparable[string]()

	require.True(t, list.Contains[string](l, eq, "c"))
	require.False(t, list.Contains[string](l, eq, "z"))
	require.Equal(t, 0, list.IndexOf[string](l, eq, "a"))
	require.Equal(t, 2, list.LastIndexOf[string](l, eq, "a"))
	require.Equal(t, -1, list.LastIndexOf[string](l, eq, "z"))
}

func TestHelpers_RemoveWithCustomEquality(t *testing.T) {
	l := list.Of("Go", "Rust")
	eq := compare.EqualityFunc[string](strings.EqualFold)

	found, err := list.Remove[string](l, eq, "GO")
	require.NoError(t, err)
	require.True(t, found)
	found, err = list.Remove[string](l, eq, "go")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, []string{"Rust"}, list.ToSlice[string](l))
}

func TestHelpers_EqualAcrossTypes(t *testing.T) {
	eq := compare.Comparable[int]()
	a := list.Of(1, 2, 3)
	b := list.EmptyLinkedArrayList[int]()
	require.NoError(t, b.AddAll(2, 3))
	require.NoError(t, b.AddFirst(1))
	v, _ := list.NewVirtualList(3, func(i int) int { return i + 1 })

	require.True(t, list.Equal[int](a, b, eq))
	require.True(t, list.Equal[int](b, v, eq))
	require.False(t, list.Equal[int](a, list.Of(1, 2), eq))
	require.False(t, list.Equal[int](a, list.Of(1, 2, 4), eq))
}

func TestLockedList_ConcurrentAppends(t *testing.T) {
	l := list.Locked[int](list.EmptyArrayList[int]())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = l.Add(w*100 + i)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, 800, l.Size())
	sum := 0
	for _, v := range l.All() {
		sum += v
	}
	require.Equal(t, 799*800/2, sum)
}

func TestLockedList_DoAndView(t *testing.T) {
	l := list.Locked[string](list.EmptyLinkedArrayList[string]())

	err := l.Do(func(m list.MutableList[string]) error {
		if err := m.AddAll("x", "y"); err != nil {
			return err
		}
		return m.AddAt(0, "w")
	})
	require.NoError(t, err)

	var got []string
	require.NoError(t, l.View(func(r list.List[string]) error {
		got = list.ToSlice(r)
		return nil
	}))
	require.Equal(t, []string{"w", "x", "y"}, got)
}

func TestLockedList_CursorFailsFast(t *testing.T) {
	l := list.Locked[int](list.Of(1, 2, 3))
	it, err := l.MutableIteratorFrom(0)
	require.NoError(t, err)

	v, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, it.Set(10))
	require.NoError(t, it.Remove())

	_, err = l.RemoveAt(0)
	require.NoError(t, err)
	_, err = it.Next()
	require.Error(t, err)
	require.Equal(t, []int{3}, list.ToSlice[int](l))
}

func TestAsContainer(t *testing.T) {
	l := list.Of(1, 2)
	c := list.AsContainer[int](l)

	require.False(t, c.Empty())
	require.Equal(t, 2, c.Size())
	require.Equal(t, []interface{}{1, 2}, c.Values())
	require.Equal(t, "List[1 2]", c.String())

	c.Clear()
	require.True(t, l.IsEmpty(), "the container shares storage")
	require.True(t, c.Empty())
}

func TestLogValue(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(slog.NewTextHandler(&sb, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	l := list.Of(1, 2, 3)
	logger.Info("state", "list", l)
	require.Contains(t, sb.String(), "list.size=3 list.capacity=4")
}
