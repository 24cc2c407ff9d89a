package linsolve

import "errors"

var (
	// ErrEmpty indicates a system with no equations.
	ErrEmpty = errors.New("linsolve: empty system")
	// ErrNonSquare indicates a coefficient matrix that is not n×n.
	ErrNonSquare = errors.New("linsolve: matrix is not square")
	// ErrDimensionMismatch indicates incompatible band or vector lengths.
	ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")
	// ErrSingular indicates a zero pivot during elimination.
	ErrSingular = errors.New("linsolve: zero pivot")
)
