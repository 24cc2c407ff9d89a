package contour

// Classify returns the marching-squares case of a cell with corner samples z
// (in corner order) against level. Bit 3 is corner 0; a bit is set when the
// corner lies strictly above the level.
//
// When no corner is strictly above but exactly two corners sit on the level,
// the cell is reclassified with >= so that a grid line lying on the level is
// still traced instead of vanishing.
func Classify(z [4]float64, level float64) Case {
	var c, ge Case
	equal := 0
	for _, v := range z {
		c <<= 1
		ge <<= 1
		if v > level {
			c |= 1
		}
		if v >= level {
			ge |= 1
		}
		if v == level {
			equal++
		}
	}
	if c == 0 && equal == 2 {
		return ge
	}
	return c
}

// caseEdges lists, for every non-saddle case, the two edges its single
// segment connects. The segment runs from the crossing on the second edge to
// the crossing on the first. Case c and case 15−c hold the same pair
// reversed. Entries 0, 5, 10 and 15 are unused.
var caseEdges = [16][2]edge{
	1:  {edgeLeft, edgeTop},
	2:  {edgeTop, edgeRight},
	3:  {edgeLeft, edgeRight},
	4:  {edgeRight, edgeBottom},
	6:  {edgeTop, edgeBottom},
	7:  {edgeLeft, edgeBottom},
	8:  {edgeBottom, edgeLeft},
	9:  {edgeBottom, edgeTop},
	11: {edgeBottom, edgeRight},
	12: {edgeRight, edgeLeft},
	13: {edgeRight, edgeTop},
	14: {edgeTop, edgeLeft},
}

// saddleEdges holds the two pairings of each saddle: [0] when the cell
// average is above the level, [1] when it is below.
var saddleEdges = [16][2][2][2]edge{
	5: {
		{{edgeLeft, edgeBottom}, {edgeRight, edgeTop}},
		{{edgeRight, edgeBottom}, {edgeLeft, edgeTop}},
	},
	10: {
		{{edgeBottom, edgeRight}, {edgeTop, edgeLeft}},
		{{edgeBottom, edgeLeft}, {edgeTop, edgeRight}},
	},
}
