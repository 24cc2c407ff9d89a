// Package grid describes a scalar field sampled on a rectangular mesh and
// validates it before it reaches the contour engine.
//
// What:
//
//   - Grid holds ascending X (columns) and Y (rows) coordinates and a flat,
//     row-major sample slice Z with Z[row*len(X)+col] = f(X[col], Y[row]).
//   - New validates shape, monotonicity and finiteness; the contour core
//     relies on these preconditions but never checks them itself.
//   - Levels turns "N equal bins" into explicit level values spanning the
//     data range.
//
// Why:
//
//   - Keep the algorithmic core free of input checks, and report malformed
//     input as a validation error at the boundary instead.
//
// Complexity:
//
//   - New:    O(W×H) time, O(W×H) memory (deep copy).
//   - Range:  O(W×H).
//   - Levels: O(W×H + N).
//
// Errors:
//
//   - ErrTooSmall: an axis has fewer than two samples.
//   - ErrDimensionMismatch: len(X)*len(Y) != len(Z).
//   - ErrNotAscending: an axis is not strictly increasing.
//   - ErrNaNInf: a coordinate or sample is NaN or ±Inf.
//   - ErrBadBins: Levels was asked for a non-positive bin count.
package grid
