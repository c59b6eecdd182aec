// Package puzzleapi exposes puzzle creation and play over HTTP.
package puzzleapi

import (
	"github.com/beka-birhanu/rabbit-run/game"
	"github.com/beka-birhanu/rabbit-run/game/maze"
	"github.com/beka-birhanu/rabbit-run/service/i"
	"github.com/google/uuid"
)

// CreateRequest represents a request to generate a new puzzle.
type CreateRequest struct {
	Size    int     `json:"size" binding:"required,min=1"`
	Carrots int     `json:"carrots" binding:"min=0"`
	Holes   int     `json:"holes" binding:"min=0"`
	Seed    *uint64 `json:"seed"`
}

// ActionRequest carries one player action key, e.g. "w", "jd" or "p".
type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// PuzzleResponse describes a puzzle and the current state of its session.
type PuzzleResponse struct {
	ID       uuid.UUID       `json:"id"`
	Seed     uint64          `json:"seed"`
	Attempts int             `json:"attempts"`
	Size     int             `json:"size"`
	Rabbit   maze.Position   `json:"rabbit"`
	Holes    []maze.Position `json:"holes"`
	Rows     []string        `json:"rows"`
	Solution string          `json:"solution"`
	Solvable bool            `json:"solvable"`
	State    game.State      `json:"state"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string      `json:"error"`
	State *game.State `json:"state,omitempty"`
}

func newPuzzleResponse(p *i.Puzzle, s game.State) *PuzzleResponse {
	return &PuzzleResponse{
		ID:       p.ID,
		Seed:     p.Seed,
		Attempts: p.Attempts,
		Size:     p.Size,
		Rabbit:   p.Rabbit,
		Holes:    p.Holes,
		Rows:     p.Rows,
		Solution: p.Solution.String(),
		Solvable: p.Solvable,
		State:    s,
	}
}
