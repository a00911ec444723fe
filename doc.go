// Package kone is a collection of generic containers for Go: lists, sets,
// maps, a handle-based minimum heap, and N-dimensional lists addressed
// through shapes and strides.
//
// What is in the box?
//
//	compare/   Equality, Order and Hashing contexts (gods comparators, xxhash)
//	growth/    power-of-two capacity policy shared by every resizable container
//	iterator/  bidirectional, fail-fast cursors with optional Set/Add/Remove
//	list/      ArrayList, LinkedArrayList (ring), fixed, settable, virtual, Locked
//	set/       list-backed, hashed and btree-sorted sets plus set algebra
//	dict/      list-backed map keyed by an explicit Equality
//	heap/      BinaryMinimumHeap with Node handles for decrease-key
//	shape/     Shape, Order, Strides, Indexer and the strides Cache
//	mdlist/    eager, lazy and virtual N-dimensional lists, 1D/2D views
//	graph/     Digraph with Dijkstra and topological sort on top of heap
//
// Comparison is never implicit: containers that need equality or ordering
// take a context at construction, and helpers over plain lists take it as an
// argument.
//
// Quick example:
//
//	l := list.Of(3, 1, 2)
//	_ = l.Add(4)
//	s := set.SortedOf(compare.Natural[int](), list.ToSlice[int](l)...)
//	m, _ := s.Min() // 1
//
// None of the containers synchronize internally; wrap a list with
// list.Locked when it is shared between goroutines.
//
//	go get github.com/katalvlaran/kone
package kone
