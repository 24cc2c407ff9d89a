// Package linsolve solves tridiagonal linear systems A·x = b with the Thomas
// algorithm (forward elimination followed by back substitution).
//
// What:
//
//   - Thomas reads the three diagonals out of a dense square matrix.
//   - ThomasBands works directly on the sub-, main and super-diagonal.
//
// Why:
//
//   - Spline fitting and implicit finite-difference schemes produce
//     tridiagonal systems; O(n) elimination beats a general LU by far.
//
// Complexity: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrEmpty: no equations.
//   - ErrNonSquare: a matrix row has the wrong length.
//   - ErrDimensionMismatch: band or right-hand-side lengths disagree.
//   - ErrSingular: a zero pivot was met. There is no pivoting; the system
//     should be diagonally dominant or symmetric positive definite.
package linsolve
