package contour

import "fmt"

// Point is a location on the contour. Z carries the level for interpolated
// points. Points compare with ==; there is no tolerance.
type Point struct {
	X, Y, Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add computes p+o component-wise.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub computes p−o component-wise.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Scale multiplies every component by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Segment is a directed piece of isoline produced by a single cell.
type Segment struct {
	Start, End Point
}

// Line is an ordered polyline. It is closed when its first and last points
// are equal.
type Line []Point

// Closed reports whether the line returns to its starting point.
func (l Line) Closed() bool {
	return len(l) > 2 && l[0] == l[len(l)-1]
}

// XY drops the Z component, which callers outside the engine rarely need.
func (l Line) XY() [][2]float64 {
	out := make([][2]float64, len(l))
	for i, p := range l {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// Contour holds every line traced for one level.
type Contour struct {
	Level float64
	Lines []Line
}

// Case is the 4-bit classification of a cell, MSB = corner 0.
type Case uint8

// Saddle reports whether the case is one of the two ambiguous saddles.
func (c Case) Saddle() bool {
	return c == 5 || c == 10
}

// edge names a side of a cell; edge e joins corners e and (e+1)&3.
type edge uint8

const (
	edgeBottom edge = iota // corners 0–1
	edgeRight              // corners 1–2
	edgeTop                // corners 2–3
	edgeLeft               // corners 3–0
)

// options configures Generate.
type options struct {
	workers int
}

// Option customises Generate.
type Option func(*options)

// DefaultWorkers processes levels one after another.
const DefaultWorkers = 1

// WithWorkers lets Generate trace up to n levels concurrently. Results keep
// the input level order regardless of n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("contour: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *options) { o.workers = n }
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
