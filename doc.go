// Package komet computes contour lines of gridded scalar fields, together
// with the small statistics toolkit a plotting host needs around them.
//
// Everything lives in subpackages:
//
//	grid/      validated rectilinear grids, sampling helpers, level selection
//	contour/   marching-squares tracing with saddle resolution and stitching
//	histogram/ bin counts over ascending edges
//	boxplot/   quartiles, whiskers and outliers
//	linsolve/  tridiagonal (Thomas) solver
//	spectrum/  forward and inverse FFT
//	wire/      CBOR request and response codec
//	plugin/    named-function host over the wire codec
//	render/    contour figures via gonum/plot
//
// A typical program validates a grid, picks levels and traces them:
//
//	g, err := grid.New(x, y, z)
//	if err != nil {
//		return err
//	}
//	levels, _ := grid.Levels(g, 10)
//	contours, err := contour.Generate(ctx, g, levels, contour.WithWorkers(4))
//
// The komet command wraps the same pipeline for YAML job files.
package komet
