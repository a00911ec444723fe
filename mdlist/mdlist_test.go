// Package mdlist_test contains unit tests for the N-dimensional lists and the
// operations over them.
package mdlist_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/list"
	"github.com/katalvlaran/kone/mdlist"
	"github.com/katalvlaran/kone/shape"
)

// ------------------------------------------------------------------------
// 1. Array
// ------------------------------------------------------------------------

func TestArray2_GetAndContains(t *testing.T) {
	m, err := mdlist.NewArray2(2, 2, func(r, c int) int { return r*10 + c })
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	eq := compare.Comparable[int]()
	require.True(t, mdlist.Contains[int](m, eq, 11))
	require.False(t, mdlist.Contains[int](m, eq, 99))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
}

func TestArray_ColumnFirstStorage(t *testing.T) {
	a, err := mdlist.NewArray(shape.MustNew(2, 3), func(i shape.Index) string {
		return fmt.Sprint(i[0], i[1])
	})
	require.NoError(t, err)

	// Dimension 0 varies fastest in the backing list.
	require.Equal(t, []string{"0 0", "1 0", "0 1", "1 1", "0 2", "1 2"}, list.ToSlice[string](a.Backing()))
	require.Equal(t, list.ToSlice[string](a.Backing()), mdlist.ToSlice[string](a))
	require.Equal(t, "Shape(2, 3)[0 0 1 0 0 1 1 1 0 2 1 2]", a.String())
}

func TestArray_RowFirstOption(t *testing.T) {
	a, err := mdlist.NewArray(shape.MustNew(2, 3), func(i shape.Index) int { return i[0]*3 + i[1] },
		mdlist.WithOrder(shape.RowFirst(2)))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, mdlist.ToSlice[int](a))

	_, err = mdlist.NewArray[int](shape.MustNew(2, 3), nil, mdlist.WithOrder(shape.Order{0, 0}))
	require.ErrorIs(t, err, shape.ErrBadOrder)
}

func TestArray_SetAndErrors(t *testing.T) {
	a, err := mdlist.NewArray[float64](shape.MustNew(2, 2, 2), nil)
	require.NoError(t, err)
	require.NoError(t, a.Set(shape.Index{1, 1, 1}, 3.5))

	v, err := a.Get(shape.Index{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = a.Get(shape.Index{2, 0, 0})
	require.ErrorIs(t, err, shape.ErrIndexOutOfShape)
	_, err = a.Get(shape.Index{0, 0})
	require.ErrorIs(t, err, shape.ErrRankMismatch)
	require.ErrorIs(t, a.Set(shape.Index{0, -1, 0}, 1), shape.ErrIndexOutOfShape)
}

func TestArray_InjectedCache(t *testing.T) {
	c := shape.NewCache()
	_, err := mdlist.NewArray[int](shape.MustNew(4, 4), nil, mdlist.WithCache(c))
	require.NoError(t, err)
	_, err = mdlist.NewArray[int](shape.MustNew(4, 4), nil, mdlist.WithCache(c))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
}

// ------------------------------------------------------------------------
// 2. Lazy and Virtual
// ------------------------------------------------------------------------

func TestLazy_GeneratesOnce(t *testing.T) {
	calls := 0
	m, err := mdlist.NewLazy(shape.MustNew(3, 3), func(i shape.Index) int {
		calls++
		return i[0] + i[1]
	})
	require.NoError(t, err)
	require.Zero(t, m.Computed())

	for k := 0; k < 3; k++ {
		v, err := m.Get(shape.Index{2, 1})
		require.NoError(t, err)
		require.Equal(t, 3, v)
	}
	require.Equal(t, 1, calls)
	require.Equal(t, 1, m.Computed())

	require.NoError(t, m.Set(shape.Index{0, 0}, 100))
	v, _ := m.Get(shape.Index{0, 0})
	require.Equal(t, 100, v)
	require.Equal(t, 1, calls, "a set cell is never generated")

	require.Len(t, mdlist.ToSlice[int](m), 9)
	require.Equal(t, 8, calls)
	require.Equal(t, 9, m.Computed())

	_, err = mdlist.NewLazy[int](shape.MustNew(1), nil)
	require.ErrorIs(t, err, mdlist.ErrNilGenerator)
}

func TestVirtual_RecomputesEveryTime(t *testing.T) {
	calls := 0
	m, err := mdlist.NewVirtual2(2, 3, func(r, c int) int {
		calls++
		return r * c
	})
	require.NoError(t, err)

	_, _ = m.At(1, 2)
	_, _ = m.At(1, 2)
	require.Equal(t, 2, calls)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, shape.ErrIndexOutOfShape)

	require.ErrorIs(t, m.SetAt(0, 0, 1), errors.ErrUnsupported)
}

func TestVirtual_Flat(t *testing.T) {
	v, err := mdlist.NewVirtual(shape.MustNew(2, 2), func(i shape.Index) string {
		return strings.Repeat("x", i[0]+2*i[1])
	})
	require.NoError(t, err)
	require.Equal(t, []string{"", "x", "xx", "xxx"}, list.ToSlice[string](v.Flat()))

	_, err = mdlist.NewVirtual[string](shape.MustNew(2), nil)
	require.ErrorIs(t, err, mdlist.ErrNilGenerator)
	_, err = mdlist.NewVirtual2[int](2, 2, nil)
	require.ErrorIs(t, err, mdlist.ErrNilGenerator)
}

// ------------------------------------------------------------------------
// 3. Rank views
// ------------------------------------------------------------------------

func TestAsMDList_IdentityUnwrap(t *testing.T) {
	m2, err := mdlist.NewLazy2(2, 2, func(r, c int) int { return r + c })
	require.NoError(t, err)

	same, err := mdlist.AsMDList2[int](m2)
	require.NoError(t, err)
	require.Same(t, m2, same)

	inner := m2.Unwrap()
	again, err := mdlist.AsMDList2(inner)
	require.NoError(t, err)
	require.NotSame(t, m2, again)
	require.Same(t, inner.(*mdlist.Lazy[int]), again.Unwrap().(*mdlist.Lazy[int]))

	_, err = mdlist.AsMDList1(inner)
	require.ErrorIs(t, err, shape.ErrRankMismatch)
}

func TestMDList1(t *testing.T) {
	v, err := mdlist.NewArray1(4, func(i int) int { return i * i })
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())

	x, err := v.At(3)
	require.NoError(t, err)
	require.Equal(t, 9, x)
	require.NoError(t, v.SetAt(3, -9))
	x, _ = v.At(3)
	require.Equal(t, -9, x)

	same, err := mdlist.AsMDList1[int](v)
	require.NoError(t, err)
	require.Same(t, v, same)

	_, err = mdlist.AsMDList2[int](v)
	require.ErrorIs(t, err, shape.ErrRankMismatch)

	_, err = mdlist.NewArray1[int](-1, nil)
	require.ErrorIs(t, err, shape.ErrBadShape)
}

func TestMDList2_SetAtOnArray(t *testing.T) {
	m, err := mdlist.NewArray2[string](2, 2, nil)
	require.NoError(t, err)
	require.NoError(t, m.SetAt(0, 1, "b"))
	v, _ := m.At(0, 1)
	require.Equal(t, "b", v)
	require.ErrorIs(t, m.SetAt(2, 2, "z"), shape.ErrIndexOutOfShape)
}

// ------------------------------------------------------------------------
// 4. Operations
// ------------------------------------------------------------------------

func TestMap(t *testing.T) {
	m, _ := mdlist.NewArray2(2, 2, func(r, c int) int { return r*2 + c })
	strs, err := mdlist.Map[int, string](m, func(v int) string { return fmt.Sprint(v) })
	require.NoError(t, err)
	require.True(t, strs.Shape().Equal(m.Shape()))

	v, _ := strs.Get(shape.Index{1, 1})
	require.Equal(t, "3", v)
}

func TestZip(t *testing.T) {
	a, _ := mdlist.NewArray2(2, 3, func(r, c int) int { return r })
	b, _ := mdlist.NewVirtual2(2, 3, func(r, c int) int { return c })

	sum, err := mdlist.Zip[int, int, int](a, b, func(x, y int) int { return x + y })
	require.NoError(t, err)
	v, _ := sum.Get(shape.Index{1, 2})
	require.Equal(t, 3, v)

	c, _ := mdlist.NewArray2(3, 2, func(r, c int) int { return 0 })
	_, err = mdlist.Zip[int, int, int](a, c, func(x, y int) int { return x + y })
	require.ErrorIs(t, err, mdlist.ErrShapeMismatch)
}

func TestZip_MixedLayouts(t *testing.T) {
	s := shape.MustNew(2, 2)
	col, _ := mdlist.NewArray(s, func(i shape.Index) int { return i[0]*2 + i[1] })
	row, _ := mdlist.NewArray(s, func(i shape.Index) int { return i[0]*2 + i[1] }, mdlist.WithOrder(shape.RowFirst(2)))

	diff, err := mdlist.Zip[int, int, int](col, row, func(x, y int) int { return x - y })
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0}, mdlist.ToSlice[int](diff), "elements are matched by index, not offset")
}

func TestForEach(t *testing.T) {
	m, _ := mdlist.NewArray1(5, func(i int) int { return i })
	var seen []int
	stop := errors.New("stop")
	err := mdlist.ForEach[int](m, func(idx shape.Index, e int) error {
		if e == 3 {
			return stop
		}
		seen = append(seen, idx[0])
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{0, 1, 2}, seen)
}
