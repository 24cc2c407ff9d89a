package contour

// Intersect returns the point where the segment p1→p2 crosses the plane
// z = level, with Z set exactly to level. It reports false when the edge is
// flat in z or the plane lies outside the segment.
func Intersect(p1, p2 Point, level float64) (Point, bool) {
	d := p2.Sub(p1)
	if d.Z == 0 {
		return Point{}, false
	}
	ratio := (level - p1.Z) / d.Z
	if ratio < 0 || ratio > 1 {
		return Point{}, false
	}
	q := p1.Add(d.Scale(ratio))
	q.Z = level
	return q, true
}

// edgeOperands gives, per edge, the corner interpolated from and the corner
// interpolated toward. Both point from the higher-index grid vertex to the
// lower-index one, so a shared edge is evaluated identically by either cell.
var edgeOperands = [4][2]int{
	edgeBottom: {1, 0},
	edgeRight:  {2, 1},
	edgeTop:    {2, 3},
	edgeLeft:   {3, 0},
}

// edgeKey identifies a grid edge by its lower-index vertex and orientation.
type edgeKey struct {
	col, row int
	vertical bool
}

type crossing struct {
	p  Point
	ok bool
}

// edgeCache remembers every edge crossing computed during one level pass.
type edgeCache map[edgeKey]crossing

// key returns the grid edge that side e of cell (col,row) lies on.
func key(col, row int, e edge) edgeKey {
	switch e {
	case edgeBottom:
		return edgeKey{col: col, row: row}
	case edgeRight:
		return edgeKey{col: col + 1, row: row, vertical: true}
	case edgeTop:
		return edgeKey{col: col, row: row + 1}
	default:
		return edgeKey{col: col, row: row, vertical: true}
	}
}

// cell is one grid cell under evaluation for a single level.
type cell struct {
	corners  [4]Point
	level    float64
	col, row int
	cache    edgeCache // nil disables sharing
}

// crossing returns the level crossing on side e of the cell.
func (c *cell) crossing(e edge) (Point, bool) {
	if c.cache == nil {
		return c.compute(e)
	}
	k := key(c.col, c.row, e)
	if hit, ok := c.cache[k]; ok {
		return hit.p, hit.ok
	}
	p, ok := c.compute(e)
	c.cache[k] = crossing{p: p, ok: ok}
	return p, ok
}

func (c *cell) compute(e edge) (Point, bool) {
	ops := edgeOperands[e]
	return Intersect(c.corners[ops[0]], c.corners[ops[1]], c.level)
}
