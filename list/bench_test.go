package list_test

import (
	"testing"

	"github.com/katalvlaran/kone/list"
)

// BenchmarkArrayList_Add measures amortized appends.
func BenchmarkArrayList_Add(b *testing.B) {
	l := list.EmptyArrayList[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Add(i)
	}
}

// BenchmarkLinkedArrayList_AddFirst measures prepends, which only move front.
func BenchmarkLinkedArrayList_AddFirst(b *testing.B) {
	l := list.EmptyLinkedArrayList[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.AddFirst(i)
	}
}

// BenchmarkArrayList_AddAtFront is the O(n) counterpart of the benchmark above.
func BenchmarkArrayList_AddAtFront(b *testing.B) {
	l, _ := list.NewArrayList[int](1024, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.AddAt(0, i)
		_, _ = l.RemoveAt(l.Size() - 1)
	}
}

// BenchmarkLinkedArrayList_Queue alternates Add and RemoveFirst around a fixed size.
func BenchmarkLinkedArrayList_Queue(b *testing.B) {
	l, _ := list.NewLinkedArrayList[int](1024, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Add(i)
		_, _ = l.RemoveFirst()
	}
}
