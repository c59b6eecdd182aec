package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/rabbit-run/game/maze"
)

// Session-related errors.
var (
	ErrInvalidRabbitPosition = errors.New("rabbit is outside the passable cells")
	ErrInvalidMove           = errors.New("invalid move")
	ErrNoCarrot              = errors.New("no carrot to pick up")
	ErrUnknownAction         = errors.New("unknown action")
)

// State is a point-in-time copy of a session.
type State struct {
	Rows             []string      `json:"rows"`
	Rabbit           maze.Position `json:"rabbit"`
	CarrotsCollected int           `json:"carrots_collected"`
	Moves            int           `json:"moves"`
	Won              bool          `json:"won"`
}

// Session is a live, playable copy of a generated field.
// It keeps the rabbit's position apart from the grid, so holes and carrots stay in place
// while the rabbit walks over them.
type Session struct {
	grid         *maze.Grid    // Private copy of the field.
	rabbit       maze.Position // Current rabbit position.
	carrots      int           // Carrots collected so far.
	moves        int           // Accepted actions so far.
	sync.RWMutex               // Read-Write lock for synchronizing access.
}

// NewSession creates a session on a copy of m with the rabbit at start.
func NewSession(m Maze, start maze.Position) (*Session, error) {
	if !m.CanMove(start) {
		return nil, ErrInvalidRabbitPosition
	}

	grid := m.Clone()
	if grid.At(start) == maze.Rabbit {
		grid.Set(start, maze.Empty)
	}

	return &Session{
		grid:   grid,
		rabbit: start,
	}, nil
}

// Apply performs a single action. The session is unchanged when an error is returned.
func (s *Session) Apply(a Action) error {
	s.Lock()
	defer s.Unlock()

	switch a.Kind {
	case MoveAction:
		return s.move(a.Direction)
	case JumpAction:
		return s.jump(a.Direction)
	case PickupAction:
		return s.pickup()
	default:
		return ErrUnknownAction
	}
}

// Replay applies every step of path as a move.
// It stops at the first rejected step and reports which one failed.
func (s *Session) Replay(path maze.Path) error {
	s.Lock()
	defer s.Unlock()

	for i, d := range path {
		if err := s.move(d); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, d, err)
		}
	}
	return nil
}

// Rabbit returns the current rabbit position.
func (s *Session) Rabbit() maze.Position {
	s.RLock()
	defer s.RUnlock()
	return s.rabbit
}

// OnHole reports whether the rabbit stands on a hole.
func (s *Session) OnHole() bool {
	s.RLock()
	defer s.RUnlock()
	return s.grid.At(s.rabbit) == maze.Hole
}

// Won reports whether the rabbit collected a carrot and reached a hole.
func (s *Session) Won() bool {
	s.RLock()
	defer s.RUnlock()
	return s.won()
}

// Snapshot creates a snapshot of the current session state.
// The rabbit is drawn on top of whatever cell it stands on.
func (s *Session) Snapshot() State {
	s.RLock()
	defer s.RUnlock()

	rows := s.grid.Rows()
	if s.grid.InBound(s.rabbit) {
		b := []byte(rows[s.rabbit.Row])
		b[s.rabbit.Col] = maze.Rabbit.Symbol()
		rows[s.rabbit.Row] = string(b)
	}

	return State{
		Rows:             rows,
		Rabbit:           s.rabbit,
		CarrotsCollected: s.carrots,
		Moves:            s.moves,
		Won:              s.won(),
	}
}

func (s *Session) won() bool {
	return s.carrots > 0 && s.grid.At(s.rabbit) == maze.Hole
}

func (s *Session) move(d maze.Direction) error {
	next := s.rabbit.Add(d)
	if !s.grid.CanMove(next) {
		return ErrInvalidMove
	}
	s.rabbit = next
	s.moves++
	return nil
}

// jump leaps over the hole next to the rabbit and lands two cells away.
// Both the hole and the landing cell are bounds-checked before they are read.
func (s *Session) jump(d maze.Direction) error {
	over := s.rabbit.Add(d)
	if !s.grid.InBound(over) || s.grid.At(over) != maze.Hole {
		return ErrInvalidMove
	}
	landing := over.Add(d)
	if !s.grid.CanMove(landing) {
		return ErrInvalidMove
	}
	s.rabbit = landing
	s.moves++
	return nil
}

func (s *Session) pickup() error {
	if s.grid.At(s.rabbit) != maze.Carrot {
		return ErrNoCarrot
	}
	s.grid.Set(s.rabbit, maze.Empty)
	s.carrots++
	s.moves++
	return nil
}
