package dict_test

import (
	"fmt"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/dict"
)

// ExampleListBackedMap counts words, keeping them in first-seen order.
func ExampleListBackedMap() {
	counts := dict.NewListBackedMap[string, int](compare.Comparable[string]())
	for _, w := range []string{"to", "be", "or", "not", "to", "be"} {
		n, _ := counts.Get(w)
		_ = counts.Set(w, n+1)
	}
	fmt.Println(counts)
	// Output: map[to:2 be:2 or:1 not:1]
}
