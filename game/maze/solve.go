package maze

import (
	"slices"
	"strings"
)

// Path is an ordered list of moves.
type Path []Direction

// String returns the path as movement keys, e.g. "ddw".
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteByte(d.Key())
	}
	return sb.String()
}

// Solve searches breadth-first from start for the nearest hole and returns the moves that
// reach it. Neighbors are expanded in the order of Directions, and a hole is only accepted
// when it is taken off the queue, so among equally distant holes the first one discovered wins.
//
// found is false when no hole is reachable. If start is itself a hole the path is empty.
// The grid is only read.
func Solve(g *Grid, start Position, holes HoleSet) (path Path, found bool) {
	if !g.InBound(start) {
		return nil, false
	}

	parent := map[Position]Position{}
	visited := map[Position]struct{}{start: {}}
	queue := []Position{start}

	var current Position
	for len(queue) > 0 {
		current, queue = queue[0], queue[1:]

		if holes.Contains(current) {
			found = true
			break
		}

		for _, d := range Directions {
			next := current.Add(d)
			if _, seen := visited[next]; seen || !g.CanMove(next) {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, false
	}

	path = Path{}
	for current != start {
		prev := parent[current]
		path = append(path, directionBetween(prev, current))
		current = prev
	}

	slices.Reverse(path)

	return path, true
}
