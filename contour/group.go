package contour

import "slices"

// Group stitches segments into polylines by matching endpoints exactly.
//
// The traversal order is fixed so that identical input always yields
// identical output:
//  1. Seed a chain with the last remaining segment (a, b).
//  2. Extend forward: while some remaining segment starts at the tail, take
//     the earliest such segment and append its end.
//  3. Reverse the chain.
//  4. Extend from the original head: while some remaining segment ends there,
//     take the earliest such segment and append its start.
//
// Emitted lines therefore run against the direction of their segments. A
// chain whose tail comes back to its head is returned closed (first point ==
// last point). Group consumes every segment exactly once and always
// terminates.
//
// Complexity: O(S) expected time and memory, S = len(segments).
func Group(segments []Segment) []Line {
	if len(segments) == 0 {
		return nil
	}
	starts := make(map[Point][]int, len(segments))
	ends := make(map[Point][]int, len(segments))
	for i, s := range segments {
		starts[s.Start] = append(starts[s.Start], i)
		ends[s.End] = append(ends[s.End], i)
	}
	used := make([]bool, len(segments))

	// take pops the earliest unused segment indexed under p.
	take := func(index map[Point][]int, p Point) (int, bool) {
		list := index[p]
		for len(list) > 0 && used[list[0]] {
			list = list[1:]
		}
		if len(list) == 0 {
			delete(index, p)
			return 0, false
		}
		index[p] = list[1:]
		used[list[0]] = true
		return list[0], true
	}

	var lines []Line
	for last := len(segments) - 1; last >= 0; last-- {
		if used[last] {
			continue
		}
		used[last] = true
		seed := segments[last]

		line := Line{seed.Start, seed.End}
		for tail := seed.End; ; {
			k, ok := take(starts, tail)
			if !ok {
				break
			}
			tail = segments[k].End
			line = append(line, tail)
		}
		slices.Reverse(line)
		for head := seed.Start; ; {
			k, ok := take(ends, head)
			if !ok {
				break
			}
			head = segments[k].Start
			line = append(line, head)
		}
		lines = append(lines, line)
	}
	return lines
}
