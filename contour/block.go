package contour

import "math"

// Tolerance factors relative to the data range.
const (
	// flatSaddleFactor scales the z range into the tolerance under which a
	// saddle's average counts as lying on the level.
	flatSaddleFactor = 1e-6
	// centerOffsetFactor scales the x extent into the offset that splits a
	// flat saddle's centre into two vertices.
	centerOffsetFactor = 1e-17
)

// intersectBlock appends the segments cell c contributes at its level.
func intersectBlock(dst []Segment, c *cell, xEps, zEps float64) []Segment {
	z := [4]float64{c.corners[0].Z, c.corners[1].Z, c.corners[2].Z, c.corners[3].Z}
	cs := Classify(z, c.level)

	switch cs {
	case 0, 15:
		return dst
	case 5, 10:
		avg := 0.25 * (z[0] + z[1] + z[2] + z[3])
		if math.Abs(avg-c.level) < zEps {
			return flatSaddle(dst, c, cs, xEps)
		}
		pairs := saddleEdges[cs][1]
		if avg > c.level {
			pairs = saddleEdges[cs][0]
		}
		dst = appendSegment(dst, c, pairs[0])
		return appendSegment(dst, c, pairs[1])
	default:
		return appendSegment(dst, c, caseEdges[cs])
	}
}

// appendSegment adds the segment from the crossing on pair[1] to the crossing
// on pair[0]. A missing crossing drops the segment.
func appendSegment(dst []Segment, c *cell, pair [2]edge) []Segment {
	to, ok := c.crossing(pair[0])
	if !ok {
		return dst
	}
	from, ok := c.crossing(pair[1])
	if !ok {
		return dst
	}
	return append(dst, Segment{Start: from, End: to})
}

// flatSaddle handles a saddle whose average sits on the level: both diagonals
// are traced as an X through the cell centre. The centre is split into two
// vertices xEps apart so that the four half-segments share no endpoint.
func flatSaddle(dst []Segment, c *cell, cs Case, xEps float64) []Segment {
	var is [4]Point
	for e := edgeBottom; e <= edgeLeft; e++ {
		p, ok := c.crossing(e)
		if !ok {
			return dst
		}
		is[e] = p
	}
	center := Pt(is[edgeBottom].X, is[edgeRight].Y, c.level)
	offset := Pt(xEps, 0, 0)
	plus, minus := center.Add(offset), center.Sub(offset)

	if cs == 5 {
		return append(dst,
			Segment{is[edgeBottom], minus},
			Segment{minus, is[edgeLeft]},
			Segment{is[edgeTop], plus},
			Segment{plus, is[edgeRight]},
		)
	}
	return append(dst,
		Segment{is[edgeRight], plus},
		Segment{plus, is[edgeBottom]},
		Segment{is[edgeLeft], minus},
		Segment{minus, is[edgeTop]},
	)
}
