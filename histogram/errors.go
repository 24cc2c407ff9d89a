package histogram

import "errors"

var (
	// ErrTooFewEdges indicates fewer than two edges (no bin).
	ErrTooFewEdges = errors.New("histogram: need at least two edges")
	// ErrNotAscending indicates edges that decrease somewhere.
	ErrNotAscending = errors.New("histogram: edges must be ascending")
	// ErrEmptyInput indicates no samples to derive edges from.
	ErrEmptyInput = errors.New("histogram: input must be non-empty")
	// ErrBadBins indicates a non-positive bin count.
	ErrBadBins = errors.New("histogram: bin count must be positive")
)
