// Package set provides sets whose notion of element equality is an explicit
// capability value from package compare rather than Go's == operator.
//
//   - ListBacked: elements kept in a list.MutableList (a LinkedArrayList by
//     default) and deduplicated by linear scan. O(n) membership; suits small
//     sets and element types that only offer equality.
//   - Hashed: buckets keyed by compare.Hashing, each bucket a ListBacked set.
//     Expected O(1) membership.
//   - Sorted: a google/btree B-tree ordered by a compare.Order. O(log n)
//     membership and ascending iteration.
//
// All three satisfy Set, and Union, Intersect, Difference and IsSubset work
// across them. No two equal elements are ever present: adding an element that
// is already there leaves the set unchanged.
//
// Sets are not safe for concurrent use.
package set
