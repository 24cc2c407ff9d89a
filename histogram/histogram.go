package histogram

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Counts returns, for each of the len(edges)-1 bins, how many values fall
// into it.
func Counts(values, edges []float64) ([]uint64, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("Counts: %d edges: %w", len(edges), ErrTooFewEdges)
	}
	if slices.ContainsFunc(edges, math.IsNaN) || !sort.Float64sAreSorted(edges) {
		return nil, fmt.Errorf("Counts: %w", ErrNotAscending)
	}
	counts := make([]uint64, len(edges)-1)
	last := edges[len(edges)-1]
	for _, v := range values {
		if math.IsNaN(v) || v < edges[0] || v > last {
			continue
		}
		if v == last {
			counts[len(counts)-1]++
			continue
		}
		// first edge strictly greater than v closes v's bin
		i := sort.Search(len(edges), func(k int) bool { return edges[k] > v })
		counts[i-1]++
	}
	return counts, nil
}

// Edges returns bins+1 equally spaced edges from min(values) to max(values).
// NaN samples do not contribute to the range.
func Edges(values []float64, bins int) ([]float64, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("Edges: bins=%d: %w", bins, ErrBadBins)
	}
	finite := slices.DeleteFunc(slices.Clone(values), math.IsNaN)
	if len(finite) == 0 {
		return nil, fmt.Errorf("Edges: %w", ErrEmptyInput)
	}
	lo, hi := floats.Min(finite), floats.Max(finite)
	step := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	return edges, nil
}
