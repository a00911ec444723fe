package heap_test

import (
	"fmt"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/heap"
)

// ExampleBinaryMinimumHeap schedules jobs by deadline and moves one forward.
func ExampleBinaryMinimumHeap() {
	h := heap.New[string](compare.Natural[int]())
	h.Add("backup", 30)
	report := h.Add("report", 20)
	h.Add("deploy", 10)

	// The report became urgent.
	_ = report.SetPriority(5)

	for !h.IsEmpty() {
		n, _ := h.PopMinimum()
		fmt.Println(n.Element(), n.Priority())
	}
	// Output:
	// report 5
	// deploy 10
	// backup 30
}
