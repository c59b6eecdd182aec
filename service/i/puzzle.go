package i

import (
	"context"

	"github.com/beka-birhanu/rabbit-run/game"
	"github.com/beka-birhanu/rabbit-run/game/maze"
	"github.com/google/uuid"
)

// PuzzleRequest describes the field a client asks for.
type PuzzleRequest struct {
	Size    int
	Carrots int
	Holes   int
	Seed    *uint64 // nil picks a random seed
}

// Puzzle is a generated field together with its precomputed solution.
type Puzzle struct {
	ID       uuid.UUID
	Seed     uint64
	Attempts int
	Size     int
	Rabbit   maze.Position
	Holes    []maze.Position
	Rows     []string
	Solution maze.Path
	Solvable bool
}

// PuzzleManager creates puzzles and routes player actions to their sessions.
type PuzzleManager interface {
	// Create generates, solves and registers a new puzzle.
	Create(ctx context.Context, req PuzzleRequest) (*Puzzle, error)

	// Get returns the puzzle and the current state of its session.
	Get(id uuid.UUID) (*Puzzle, game.State, error)

	// Act applies the action encoded by key and returns the resulting state.
	Act(id uuid.UUID, key string) (game.State, error)

	// Delete drops a puzzle and its session.
	Delete(id uuid.UUID) error
}
