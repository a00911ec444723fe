// Package shape maps N-dimensional indices to flat offsets and back.
//
// A Shape is an immutable vector of dimension extents. Strides fixes how a
// Shape is laid out in one flat array: an Order lists the dimensions from the
// fastest varying to the slowest, the fastest gets stride 1, and each next
// dimension's stride is the previous stride times the previous extent. The
// offset of an index is the dot product of index and strides.
//
// ColumnFirst (dimension 0 fastest, the Fortran layout) is the default
// everywhere in this module; RowFirst (last dimension fastest, the C layout)
// is available explicitly. For Shape(2, 3) column-first, index (1, 2) lives
// at offset 1*1 + 2*2 = 5.
//
// Indexer walks every index of a Strides in offset order. Cache memoizes
// column-first Strides by shape; DefaultCache is the process-wide instance
// used by StridesOf, and callers that want isolation inject their own.
//
// Errors:
//
//   - ErrBadShape: a negative extent, or a size that overflows int.
//   - ErrBadOrder: an Order that is not a permutation of the dimensions.
//   - ErrRankMismatch: an index, order or dimension number of the wrong rank.
//   - ErrIndexOutOfShape: an index component outside [0, extent). Every bad
//     component is reported, collected in a cloudeng.io/errors.M.
//   - ErrOffsetOutOfRange: an offset outside [0, LinearSize()).
package shape
