package contour

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/supertrianguloid/komet/grid"
)

// Lines traces one Contour per level, in level order, over the field z
// sampled at x (columns) and y (rows), row-major: z[row*len(x)+col].
//
// Lines is a pure function. It assumes len(x)*len(y) == len(z), at least two
// samples per axis and ascending axes; use grid.New and Generate to have
// those checked.
func Lines(x, y, z []float64, levels []float64) []Contour {
	if len(levels) == 0 {
		return nil
	}
	zRange := floats.Max(z) - floats.Min(z)
	out := make([]Contour, len(levels))
	for i, level := range levels {
		out[i] = single(x, y, z, level, zRange)
	}
	return out
}

// Generate validates the request and traces one Contour per level over g,
// in level order. With WithWorkers(n) up to n levels are traced
// concurrently. Cancelling ctx stops scheduling further levels.
func Generate(ctx context.Context, g *grid.Grid, levels []float64, opts ...Option) ([]Contour, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for i, level := range levels {
		if math.IsNaN(level) {
			return nil, fmt.Errorf("Generate: level %d: %w", i, ErrBadLevel)
		}
	}
	o := gatherOptions(opts)

	lo, hi := g.Range()
	zRange := hi - lo
	out := make([]Contour, len(levels))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for i, level := range levels {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out[i] = single(g.X, g.Y, g.Z, level, zRange)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	return out, nil
}

// single traces one level: scan cells, collect segments, stitch.
func single(x, y, z []float64, level, zRange float64) Contour {
	cols, rows := len(x), len(y)
	xEps := centerOffsetFactor * (x[cols-1] - x[0])
	zEps := flatSaddleFactor * zRange

	c := cell{level: level, cache: make(edgeCache)}
	var segments []Segment
	for i := 0; i < cols-1; i++ {
		for j := 0; j < rows-1; j++ {
			zs := [4]float64{
				z[j*cols+i],
				z[j*cols+i+1],
				z[(j+1)*cols+i+1],
				z[(j+1)*cols+i],
			}
			if min(zs[0], zs[1], zs[2], zs[3]) > level || max(zs[0], zs[1], zs[2], zs[3]) < level {
				continue
			}
			c.col, c.row = i, j
			c.corners = [4]Point{
				{X: x[i], Y: y[j], Z: zs[0]},
				{X: x[i+1], Y: y[j], Z: zs[1]},
				{X: x[i+1], Y: y[j+1], Z: zs[2]},
				{X: x[i], Y: y[j+1], Z: zs[3]},
			}
			segments = intersectBlock(segments, &c, xEps, zEps)
		}
	}
	return Contour{Level: level, Lines: Group(segments)}
}
