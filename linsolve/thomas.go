package linsolve

import "fmt"

// Thomas solves a·x = b where a is an n×n tridiagonal matrix given row by
// row. Entries off the three central diagonals are ignored.
func Thomas(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, fmt.Errorf("Thomas: %w", ErrEmpty)
	}
	if len(a) != n {
		return nil, fmt.Errorf("Thomas: %d rows for %d unknowns: %w", len(a), n, ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("Thomas: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	lower := make([]float64, n-1)
	diag := make([]float64, n)
	upper := make([]float64, n-1)
	for i := 0; i < n; i++ {
		diag[i] = a[i][i]
		if i > 0 {
			lower[i-1] = a[i][i-1]
		}
		if i < n-1 {
			upper[i] = a[i][i+1]
		}
	}
	return ThomasBands(lower, diag, upper, b)
}

// ThomasBands solves the tridiagonal system with sub-diagonal lower
// (len n−1), main diagonal diag (len n), super-diagonal upper (len n−1) and
// right-hand side b (len n).
func ThomasBands(lower, diag, upper, b []float64) ([]float64, error) {
	n := len(diag)
	if n == 0 {
		return nil, fmt.Errorf("ThomasBands: %w", ErrEmpty)
	}
	if len(b) != n || len(lower) != n-1 || len(upper) != n-1 {
		return nil, fmt.Errorf("ThomasBands: bands %d/%d/%d with rhs %d: %w",
			len(lower), n, len(upper), len(b), ErrDimensionMismatch)
	}

	gamma := make([]float64, n) // normalised super-diagonal
	y := make([]float64, n)     // forward-eliminated rhs

	// Stage 1: forward elimination.
	beta := diag[0]
	if beta == 0 {
		return nil, fmt.Errorf("ThomasBands: row 0: %w", ErrSingular)
	}
	if n > 1 {
		gamma[0] = upper[0] / beta
	}
	y[0] = b[0] / beta
	for i := 1; i < n; i++ {
		beta = diag[i] - lower[i-1]*gamma[i-1]
		if beta == 0 {
			return nil, fmt.Errorf("ThomasBands: row %d: %w", i, ErrSingular)
		}
		if i < n-1 {
			gamma[i] = upper[i] / beta
		}
		y[i] = (b[i] - lower[i-1]*y[i-1]) / beta
	}

	// Stage 2: back substitution.
	x := make([]float64, n)
	x[n-1] = y[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = y[i] - gamma[i]*x[i+1]
	}
	return x, nil
}
