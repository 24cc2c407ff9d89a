package boxplot

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput indicates an empty sample.
var ErrEmptyInput = errors.New("boxplot: input must be non-empty")

// DefaultWhiskers is the conventional Tukey whisker length in IQRs.
const DefaultWhiskers = 1.5

// Stats summarises a sample.
type Stats struct {
	Mean        float64
	Median      float64
	Q1          float64
	Q3          float64
	Min         float64
	Max         float64
	WhiskerLow  float64
	WhiskerHigh float64
	Outliers    []float64 // in input order
}

// Compute returns the box-plot statistics of values with whiskers reaching
// at most whiskers·IQR past the box.
func Compute(values []float64, whiskers float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, fmt.Errorf("Compute: %w", ErrEmptyInput)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Stats{
		Mean:   stat.Mean(values, nil),
		Median: Percentile(sorted, 50),
		Q1:     Percentile(sorted, 25),
		Q3:     Percentile(sorted, 75),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	iqr := s.Q3 - s.Q1

	s.WhiskerLow = s.Q1
	if i := slices.IndexFunc(sorted, func(v float64) bool { return v >= s.Q1-iqr*whiskers }); i >= 0 {
		s.WhiskerLow = math.Min(sorted[i], s.Q1)
	}
	s.WhiskerHigh = s.Q3
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= s.Q3+iqr*whiskers {
			s.WhiskerHigh = math.Max(sorted[i], s.Q3)
			break
		}
	}

	for _, v := range values {
		if v < s.WhiskerLow || v > s.WhiskerHigh {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s, nil
}

// Percentile interpolates the q-th percentile (0..100) of an ascending,
// non-empty sample.
func Percentile(sorted []float64, q float64) float64 {
	return interpolate(sorted, q/100*float64(len(sorted)-1))
}

// interpolate reads sorted at a fractional index, clamping to the ends.
func interpolate(sorted []float64, index float64) float64 {
	switch {
	case index < 0:
		return sorted[0]
	case index >= float64(len(sorted)-1):
		return sorted[len(sorted)-1]
	}
	lower := int(math.Floor(index))
	t := index - float64(lower)
	return sorted[lower]*(1-t) + sorted[lower+1]*t
}
