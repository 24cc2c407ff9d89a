package contour

import "errors"

var (
	// ErrNilGrid indicates Generate was called without a grid.
	ErrNilGrid = errors.New("contour: grid is nil")
	// ErrBadLevel indicates a NaN level, which no sample can cross.
	ErrBadLevel = errors.New("contour: level must not be NaN")
)
