/*
Package maze provides the square rabbit field, its random generation and its solver.

A Grid is a size x size board of Cell values. Generate places one rabbit, a number of
rabbit holes and carrots at random and fills every other square with stone. Solve runs a
breadth-first search from the rabbit to the nearest reachable hole and returns the moves
that lead there.

CanMove is the single movement predicate: a square is enterable when it lies on the grid
and is not stone. The solver and the play session both rely on it.
*/
package maze

import (
	"slices"
	"strings"
)

// Grid represents a square field of cells.
type Grid struct {
	size  int      // Number of rows and columns
	cells [][]Cell // cells[row][col]
}

// NewGrid returns a size x size grid with every cell Empty.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the number of rows (and columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBound checks whether the position lies on the grid.
func (g *Grid) InBound(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the cell at p. Positions off the grid read as Stone.
func (g *Grid) At(p Position) Cell {
	if !g.InBound(p) {
		return Stone
	}
	return g.cells[p.Row][p.Col]
}

// Set stores c at p. It reports false when p is off the grid.
func (g *Grid) Set(p Position, c Cell) bool {
	if !g.InBound(p) {
		return false
	}
	g.cells[p.Row][p.Col] = c
	return true
}

// CanMove reports whether the rabbit may enter p.
func (g *Grid) CanMove(p Position) bool {
	return g.InBound(p) && g.cells[p.Row][p.Col].Passable()
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for i, row := range g.cells {
		cells[i] = slices.Clone(row)
	}
	return &Grid{size: g.size, cells: cells}
}

// Rows returns one string per row, one symbol per cell.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.size)
	for _, row := range g.cells {
		b := make([]byte, len(row))
		for j, cell := range row {
			b[j] = cell.Symbol()
		}
		rows = append(rows, string(b))
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HoleSet is the set of rabbit hole positions.
type HoleSet map[Position]struct{}

// NewHoleSet builds a set from the given positions.
func NewHoleSet(positions ...Position) HoleSet {
	hs := make(HoleSet, len(positions))
	for _, p := range positions {
		hs.Add(p)
	}
	return hs
}

// Add inserts p into the set.
func (hs HoleSet) Add(p Position) {
	hs[p] = struct{}{}
}

// Contains checks membership of p.
func (hs HoleSet) Contains(p Position) bool {
	_, ok := hs[p]
	return ok
}

// Len returns the number of holes.
func (hs HoleSet) Len() int {
	return len(hs)
}

// Positions returns the holes in row-major order.
func (hs HoleSet) Positions() []Position {
	out := make([]Position, 0, len(hs))
	for p := range hs {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
