package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is a validated rectangular sampling of a scalar field. It is
// immutable once built.
type Grid struct {
	X []float64 // column coordinates, strictly ascending
	Y []float64 // row coordinates, strictly ascending
	Z []float64 // row-major samples, len(X)*len(Y)
}

// New constructs a Grid from column coordinates x, row coordinates y and
// row-major samples z. It deep-copies the inputs.
// Returns ErrTooSmall, ErrDimensionMismatch, ErrNotAscending or ErrNaNInf,
// wrapped with the offending detail.
func New(x, y, z []float64) (*Grid, error) {
	if len(x) < 2 || len(y) < 2 {
		return nil, fmt.Errorf("New: %d×%d: %w", len(x), len(y), ErrTooSmall)
	}
	if len(x)*len(y) != len(z) {
		return nil, fmt.Errorf("New: %d×%d grid with %d samples: %w", len(x), len(y), len(z), ErrDimensionMismatch)
	}
	if err := checkAxis("x", x); err != nil {
		return nil, err
	}
	if err := checkAxis("y", y); err != nil {
		return nil, err
	}
	for i, v := range z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			col, row := i%len(x), i/len(x)
			return nil, fmt.Errorf("New: z at (%d,%d): %w", col, row, ErrNaNInf)
		}
	}

	return &Grid{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
		Z: append([]float64(nil), z...),
	}, nil
}

func checkAxis(name string, axis []float64) error {
	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("New: %s[%d]: %w", name, i, ErrNaNInf)
		}
		if i > 0 && v <= axis[i-1] {
			return fmt.Errorf("New: %s[%d]=%g after %g: %w", name, i, v, axis[i-1], ErrNotAscending)
		}
	}
	return nil
}

// FromFunc samples f at every (x[col], y[row]) and validates the result.
func FromFunc(x, y []float64, f func(x, y float64) float64) (*Grid, error) {
	z := make([]float64, 0, len(x)*len(y))
	for _, yv := range y {
		for _, xv := range x {
			z = append(z, f(xv, yv))
		}
	}
	return New(x, y, z)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	return floats.Span(out, lo, hi)
}

// Cols returns the number of columns (len(X)).
func (g *Grid) Cols() int { return len(g.X) }

// Rows returns the number of rows (len(Y)).
func (g *Grid) Rows() int { return len(g.Y) }

// InBounds reports whether (col,row) addresses a sample.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < len(g.X) && row >= 0 && row < len(g.Y)
}

// Index maps (col,row) to a row-major index: row*Cols + col.
func (g *Grid) Index(col, row int) int {
	return row*len(g.X) + col
}

// Coordinate converts a row-major index back to (col,row).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % len(g.X), idx / len(g.X)
}

// At returns the sample at (col,row).
func (g *Grid) At(col, row int) float64 {
	return g.Z[g.Index(col, row)]
}

// Range returns the smallest and largest sample.
func (g *Grid) Range() (lo, hi float64) {
	return floats.Min(g.Z), floats.Max(g.Z)
}
