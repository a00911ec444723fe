// Package mdlist provides N-dimensional lists addressed by shape.Index.
//
// Every MDList pairs a shape.Strides with element storage; an index is turned
// into an offset by the strides and the offset selects the element. Three
// storage strategies are offered:
//
//   - Array: eager. Every element is produced once at construction and stored
//     in a list.SettableArrayList.
//   - Lazy: each element is produced on first access and memoized. The
//     generator runs at most once per index; Set overwrites the memo.
//   - Virtual: nothing is stored; the generator runs on every access.
//
// The layout defaults to column-first strides from shape.DefaultCache. Use
// WithOrder for another traversal order or WithCache for an isolated cache.
//
// MDList1 and MDList2 are rank-specific views with integer coordinates
// (At(i), At(row, col)). AsMDList1 and AsMDList2 return their argument
// unchanged when it already is such a view.
//
// Contains, Map, Zip, ForEach and ToSlice work on any MDList; All and ToSlice
// visit elements in offset order.
//
// MD lists are not safe for concurrent use. Strides and the shared cache are.
package mdlist
