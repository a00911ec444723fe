// Package list provides the indexable list family: resizable, ring-buffered,
// fixed-capacity, fixed-size and computed lists sharing one cursor protocol.
//
// Overview:
//
//   - ArrayList: one contiguous power-of-two array. Appends are amortized O(1),
//     interior inserts and removals shift the tail.
//   - LinkedArrayList: a ring buffer with a moving front. Both ends are amortized
//     O(1); interior inserts and removals shift whichever side is shorter.
//   - FixedCapacityList: allocated once, never resized. Overflow fails with
//     ErrCapacityExceeded and leaves the list unchanged.
//   - SettableArrayList: fixed size, elements replaceable in place. It backs the
//     eager multidimensional lists in package mdlist.
//   - VirtualList: stores nothing; element i is computed by a function.
//   - LockedList: an RWMutex wrapper for sharing any MutableList.
//
// Capacity policy (ArrayList, LinkedArrayList):
//
//   - Capacities are powers of two, never below the minimum capacity (2 by
//     default, see WithMinimumCapacity).
//   - A full list doubles. When the size drops to a quarter of the capacity the
//     list shrinks to the smallest power of two holding twice the size.
//   - For non-empty lists with default options: size <= capacity < 4*size.
//
// Cursors:
//
// Every list hands out cursors from package iterator. Cursors are fail-fast: a
// structural change (insert, remove, clear) made other than through the cursor
// makes its next operation return iterator.ErrConcurrentModification. Replacing
// an element with Set is not structural. A cursor asked for a capability its
// list lacks returns errors.ErrUnsupported.
//
// Error handling (sentinel errors, wrapped with the failing call):
//
//   - ErrIndexOutOfRange, ErrCapacityExceeded, ErrEmpty, ErrNegativeSize.
//
// None of the lists is safe for concurrent use; wrap them with Locked.
package list
