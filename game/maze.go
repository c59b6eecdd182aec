package game

import "github.com/beka-birhanu/rabbit-run/game/maze"

// Maze defines the methods a field must implement to be played on.
type Maze interface {
	Size() int
	InBound(p maze.Position) bool
	At(p maze.Position) maze.Cell
	CanMove(p maze.Position) bool
	Clone() *maze.Grid
}

var _ Maze = (*maze.Grid)(nil)
