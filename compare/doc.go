// Package compare defines the capability contexts injected into containers.
//
// A context is a separate value that knows how to compare elements of a type:
//
//	Equality[E] — Equal(a, b)
//	Hashing[E]  — Equality + Hash(e), for hash-bucketed containers
//	Order[E]    — Equality + Compare(a, b), for heaps and sorted containers
//
// Containers never rely on the intrinsic equality of their elements. A set or a
// map receives its context once at construction and uses it for every later
// comparison; list helpers such as list.Contains take it as an explicit argument.
// Passing two inconsistent contexts to operations on the same container is a
// caller error and is not detected.
//
// Ready-made contexts:
//
//	Comparable[E]()         Go == for comparable types
//	Natural[E]()            < and > for ordered types
//	FromComparator[E](c)    adapts a gods utils.Comparator
//	StringHashing()         xxhash over string contents
//	BytesHashing()          xxhash over byte slices
package compare
