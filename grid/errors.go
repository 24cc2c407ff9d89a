package grid

import "errors"

var (
	// ErrTooSmall indicates an axis with fewer than two samples (no cells).
	ErrTooSmall = errors.New("grid: each axis needs at least two samples")
	// ErrDimensionMismatch indicates len(X)*len(Y) != len(Z).
	ErrDimensionMismatch = errors.New("grid: len(x)*len(y) must equal len(z)")
	// ErrNotAscending indicates an axis that is not strictly increasing.
	ErrNotAscending = errors.New("grid: axis coordinates must be strictly ascending")
	// ErrNaNInf indicates a NaN or ±Inf coordinate or sample.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
	// ErrBadBins indicates a non-positive bin count.
	ErrBadBins = errors.New("grid: bin count must be positive")
)
