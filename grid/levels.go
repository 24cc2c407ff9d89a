package grid

import "fmt"

// Levels returns n+1 equally spaced level values spanning [min z, max z],
// the "N equal bins" form of level selection. For a constant field every
// returned level equals that constant.
func Levels(g *Grid, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Levels: n=%d: %w", n, ErrBadBins)
	}
	lo, hi := g.Range()
	step := (hi - lo) / float64(n)
	levels := make([]float64, n+1)
	for i := range levels {
		levels[i] = lo + float64(i)*step
	}
	return levels, nil
}
