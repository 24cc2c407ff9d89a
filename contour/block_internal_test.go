package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCorners(z0, z1, z2, z3 float64) [4]Point {
	return [4]Point{{0, 0, z0}, {1, 0, z1}, {1, 1, z2}, {0, 1, z3}}
}

// TestSharedEdgeBitExact evaluates the edge between two neighbouring cells
// from both sides, without the cache, and compares the raw bits.
func TestSharedEdgeBitExact(t *testing.T) {
	x := []float64{0.1, 0.73, 1.9}
	y := []float64{-0.37, 0.41}
	level := 0.3
	left := cell{level: level, corners: [4]Point{
		{x[0], y[0], 0.013}, {x[1], y[0], 0.977}, {x[1], y[1], -0.61}, {x[0], y[1], 0.2},
	}}
	right := cell{level: level, col: 1, corners: [4]Point{
		{x[1], y[0], 0.977}, {x[2], y[0], 0.5}, {x[2], y[1], 0.1}, {x[1], y[1], -0.61},
	}}

	a, okA := left.crossing(edgeRight)
	b, okB := right.crossing(edgeLeft)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, math.Float64bits(a.X), math.Float64bits(b.X))
	assert.Equal(t, math.Float64bits(a.Y), math.Float64bits(b.Y))
	assert.Equal(t, key(0, 0, edgeRight), key(1, 0, edgeLeft))
	assert.Equal(t, key(0, 0, edgeTop), key(0, 1, edgeBottom))
}

// TestEdgeCacheReuse checks that a cached crossing is served for the
// neighbouring cell.
func TestEdgeCacheReuse(t *testing.T) {
	cache := make(edgeCache)
	c := cell{level: 0.5, cache: cache, corners: unitCorners(0, 1, 1, 0)}
	p, ok := c.crossing(edgeRight)
	require.False(t, ok, "right edge is flat at 1")
	p, ok = c.crossing(edgeBottom)
	require.True(t, ok)
	assert.Len(t, cache, 2)

	// Poison the stored crossing: the neighbour below must see the cached value.
	k := key(0, 0, edgeBottom)
	cache[k] = crossing{p: Pt(42, 42, 0.5), ok: true}
	below := cell{level: 0.5, cache: cache, row: -1, corners: unitCorners(0, 1, 1, 0)}
	got, ok := below.crossing(edgeTop)
	require.True(t, ok)
	assert.Equal(t, Pt(42, 42, 0.5), got)
	assert.NotEqual(t, p, got)
}

// TestFlatSaddleSplitsCentre uses a visible offset to check the four
// half-segments of a degenerate saddle never share a vertex across diagonals.
func TestFlatSaddleSplitsCentre(t *testing.T) {
	for _, tc := range []struct {
		z    [4]float64
		want Case
	}{
		{[4]float64{-1, 1, -1, 1}, 5},
		{[4]float64{1, -1, 1, -1}, 10},
	} {
		c := cell{level: 0, corners: unitCorners(tc.z[0], tc.z[1], tc.z[2], tc.z[3])}
		require.Equal(t, tc.want, Classify(tc.z, 0))

		segs := intersectBlock(nil, &c, 0.125, 1e-6)
		require.Len(t, segs, 4)
		centres := map[Point]int{}
		for _, s := range segs {
			for _, p := range []Point{s.Start, s.End} {
				if p.Y == 0.5 && p.X > 0 && p.X < 1 {
					centres[p]++
				}
			}
		}
		assert.Len(t, centres, 2, "case %d", tc.want)
		assert.Contains(t, centres, Pt(0.625, 0.5, 0))
		assert.Contains(t, centres, Pt(0.375, 0.5, 0))

		lines := Group(segs)
		assert.Len(t, lines, 2)
		for _, l := range lines {
			assert.Len(t, l, 3)
		}
	}
}

// TestSaddleResolution checks the average-driven pairing of both saddles.
func TestSaddleResolution(t *testing.T) {
	// case 5 with average above the level: corners 1 and 3 are joined.
	c := cell{level: 0.25, corners: unitCorners(-1, 2, 0, 1)}
	segs := intersectBlock(nil, &c, 1e-17, 1e-6)
	require.Len(t, segs, 2)
	left, _ := c.crossing(edgeLeft)
	bottom, _ := c.crossing(edgeBottom)
	assert.Equal(t, Segment{Start: bottom, End: left}, segs[0])

	// Same corners, level above the average: pairing flips.
	c.level = 0.75
	segs = intersectBlock(nil, &c, 1e-17, 1e-6)
	require.Len(t, segs, 2)
	right, _ := c.crossing(edgeRight)
	bottom, _ = c.crossing(edgeBottom)
	assert.Equal(t, Segment{Start: bottom, End: right}, segs[0])
}

// TestGroupCanonicalOrder pins the traversal policy on hand-built segments.
func TestGroupCanonicalOrder(t *testing.T) {
	a, b, c, d, e := Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0), Pt(9, 9, 0)
	segs := []Segment{
		{a, b},
		{b, c},
		{e, d},
		{c, d},
	}
	lines := Group(segs)
	require.Len(t, lines, 2)
	// Seed is {c,d}; nothing starts at d, so the chain reverses to [d c] and
	// grows backward through b and a.
	assert.Equal(t, Line{d, c, b, a}, lines[0])
	assert.Equal(t, Line{d, e}, lines[1])

	assert.Nil(t, Group(nil))
}

// TestGroupEarliestMatchWins checks tie-breaking between two segments that
// start at the same point.
func TestGroupEarliestMatchWins(t *testing.T) {
	o, p, q, r := Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(5, 5, 0)
	segs := []Segment{
		{o, p}, // earliest start at o
		{o, q},
		{r, o}, // seed
	}
	lines := Group(segs)
	require.Len(t, lines, 2)
	assert.Equal(t, Line{p, o, r}, lines[0])
	assert.Equal(t, Line{q, o}, lines[1])
}
