// Package contour traces isolines of a scalar field sampled on a rectangular
// grid using marching squares.
//
// What:
//
//   - Classify maps a cell's four corner samples to one of 16 cases, with a
//     tie-break for grid lines lying exactly on the level.
//   - Intersect finds where a grid edge crosses the level plane.
//   - Each cell emits zero, one, two or four directed segments; the two saddle
//     cases (5 and 10) are disambiguated by the cell average.
//   - Group stitches the unordered segments of one level into polylines by
//     exact endpoint equality.
//   - Lines and Generate drive all of the above once per requested level.
//
// Corner and edge order:
//
//	3 ──edge 2── 2        corner 0 = (x[i],   y[j])
//	│            │        corner 1 = (x[i+1], y[j])
//	edge 3    edge 1      corner 2 = (x[i+1], y[j+1])
//	│            │        corner 3 = (x[i],   y[j+1])
//	0 ──edge 0── 1
//
// Exactness:
//
//	Stitching compares points with ==. Every grid edge is interpolated in one
//	canonical direction (higher-index vertex toward lower-index vertex) and the
//	crossing is cached per edge for the duration of a level pass, so the two
//	cells sharing an edge always see the same bits.
//
// Complexity:
//
//   - Per level: O(W×H) cell scan + O(S) grouping, S = number of segments
//     (hash-indexed endpoint matching).
//   - Memory: O(S) per level in flight.
//
// Preconditions:
//
//	Lines does not validate its input. Callers that accept untrusted data go
//	through grid.New and Generate, which report malformed grids as errors.
//
// Errors:
//
//   - ErrNilGrid: Generate was called with a nil grid.
//   - ErrBadLevel: a requested level is NaN.
package contour
