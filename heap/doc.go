// Package heap provides BinaryMinimumHeap, an array-backed binary min-heap of
// element/priority pairs with decrease-key support through handles.
//
// Overview:
//
//   - Add returns a *Node, a handle into the heap's backing array. The handle
//     follows its entry as the heap reorders, so Node.SetPriority can restore
//     the heap in O(log n) without searching for the entry.
//   - PopMinimum removes the root, Minimum peeks at it. Both report ErrEmpty on
//     an empty heap.
//   - Priorities are compared with a compare.Order supplied at construction.
//     Entries with equal priorities come out in no particular order.
//
// Heap invariant: for every non-root entry, its priority is not less than its
// parent's. The root is therefore always a minimum.
//
// Handles do not own their entries. Once an entry leaves the heap (popped,
// removed or cleared) its node is detached and SetPriority returns
// ErrDetachedNode.
//
// The backing array follows the power-of-two policy of package growth.
// BinaryMinimumHeap is not safe for concurrent use.
//
// Complexity:
//
//   - Add, PopMinimum, Remove, Node.SetPriority: O(log n)
//   - Minimum, Len: O(1)
package heap
