package contour_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/supertrianguloid/komet/contour"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// unitCell traces one level over the unit square. z is in grid order:
// z(0,0), z(1,0), z(0,1), z(1,1).
func unitCell(z [4]float64, level float64) []contour.Line {
	return contour.Lines([]float64{0, 1}, []float64{0, 1}, z[:], []float64{level})[0].Lines
}

func line(pts ...contour.Point) contour.Line {
	return contour.Line(pts)
}

var pt = contour.Pt
