// Package list_test provides runnable examples for the list family.
package list_test

import (
	"fmt"

	"github.com/katalvlaran/kone/list"
)

// ExampleArrayList shows the doubling growth of an ArrayList.
func ExampleArrayList() {
	l := list.EmptyArrayList[int]()
	for i := 1; i <= 5; i++ {
		_ = l.Add(i)
		fmt.Printf("size=%d capacity=%d\n", l.Size(), l.Capacity())
	}
	// Output:
	// size=1 capacity=2
	// size=2 capacity=2
	// size=3 capacity=4
	// size=4 capacity=4
	// size=5 capacity=8
}

// ExampleLinkedArrayList uses a LinkedArrayList as a double-ended queue.
func ExampleLinkedArrayList() {
	q := list.EmptyLinkedArrayList[string]()
	_ = q.Add("b")
	_ = q.AddFirst("a")
	_ = q.Add("c")

	for !q.IsEmpty() {
		v, _ := q.RemoveFirst()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: a b c
}

// ExampleArrayList_MutableIteratorFrom edits a list while walking it.
func ExampleArrayList_MutableIteratorFrom() {
	l := list.Of(1, 2, 3, 4)
	it, _ := l.MutableIteratorFrom(0)
	for it.HasNext() {
		v, _ := it.Next()
		switch {
		case v%2 == 0:
			_ = it.Remove()
		default:
			_ = it.Add(v * 10)
		}
	}
	fmt.Println(l)
	// Output: [1 10 3 30]
}
