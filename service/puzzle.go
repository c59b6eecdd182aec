package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/beka-birhanu/rabbit-run/game"
	"github.com/beka-birhanu/rabbit-run/game/maze"
	"github.com/beka-birhanu/rabbit-run/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxSize     = 64
	defaultMaxAttempts = 1

	// streamSalt separates the two PCG words derived from one seed.
	streamSalt = 0x9e3779b97f4a7c15
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrSizeTooLarge   = errors.New("puzzle size is too large")
)

// Options tunes a PuzzleService.
type Options struct {
	MaxSize     int // Largest accepted grid side.
	MaxAttempts int // Generations tried while the field stays unsolvable.
}

type entry struct {
	puzzle  *i.Puzzle
	session *game.Session
}

// PuzzleService generates and solves puzzles and keeps their play sessions in memory.
type PuzzleService struct {
	puzzles      map[uuid.UUID]entry
	logger       i.Logger
	opts         *Options
	sync.RWMutex // Guards puzzles.
}

var _ i.PuzzleManager = &PuzzleService{}

// NewPuzzleService creates a PuzzleService, filling unset options with defaults.
func NewPuzzleService(logger i.Logger, opts *Options) (*PuzzleService, error) {
	if logger == nil {
		return nil, errors.New("puzzle service needs a logger")
	}

	if opts == nil {
		opts = &Options{
			MaxSize:     defaultMaxSize,
			MaxAttempts: defaultMaxAttempts,
		}
	}

	if opts.MaxSize <= 0 {
		opts.MaxSize = defaultMaxSize
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}

	return &PuzzleService{
		puzzles: make(map[uuid.UUID]entry),
		logger:  logger,
		opts:    opts,
	}, nil
}

// Create implements i.PuzzleManager.
// An unsolvable field is regenerated from the next seed until MaxAttempts is used up; the
// last field is returned either way and Solvable tells the caller what it got.
func (ps *PuzzleService) Create(ctx context.Context, req i.PuzzleRequest) (*i.Puzzle, error) {
	if req.Size > ps.opts.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, req.Size, ps.opts.MaxSize)
	}
	if err := maze.Validate(req.Size, req.Carrots, req.Holes); err != nil {
		ps.logger.Warning(fmt.Sprintf("Rejected puzzle request: %s", err))
		return nil, err
	}

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	var (
		grid     *maze.Grid
		rabbit   maze.Position
		holes    maze.HoleSet
		path     maze.Path
		solvable bool
		attempts int
	)
	for attempts < ps.opts.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempts > 0 {
			seed++
		}
		attempts++

		var err error
		grid, rabbit, holes, err = maze.Generate(req.Size, req.Carrots, req.Holes, newRand(seed))
		if err != nil {
			ps.logger.Error(fmt.Sprintf("Generating puzzle: %s", err))
			return nil, err
		}

		path, solvable = maze.Solve(grid, rabbit, holes)
		if solvable {
			break
		}
		ps.logger.Debug(fmt.Sprintf("Seed %d produced an unsolvable field (attempt %d/%d)", seed, attempts, ps.opts.MaxAttempts))
	}

	session, err := game.NewSession(grid, rabbit)
	if err != nil {
		ps.logger.Error(fmt.Sprintf("Starting session: %s", err))
		return nil, err
	}

	puzzle := &i.Puzzle{
		ID:       uuid.New(),
		Seed:     seed,
		Attempts: attempts,
		Size:     grid.Size(),
		Rabbit:   rabbit,
		Holes:    holes.Positions(),
		Rows:     grid.Rows(),
		Solution: path,
		Solvable: solvable,
	}

	ps.Lock()
	ps.puzzles[puzzle.ID] = entry{puzzle: puzzle, session: session}
	ps.Unlock()

	if solvable {
		ps.logger.Info(fmt.Sprintf("Puzzle created: ID=%s Size=%d Seed=%d Solution=%q", puzzle.ID, puzzle.Size, seed, path.String()))
	} else {
		ps.logger.Warning(fmt.Sprintf("Puzzle created without a solution: ID=%s Size=%d Seed=%d", puzzle.ID, puzzle.Size, seed))
	}

	return puzzle, nil
}

// Get implements i.PuzzleManager.
func (ps *PuzzleService) Get(id uuid.UUID) (*i.Puzzle, game.State, error) {
	e, err := ps.lookup(id)
	if err != nil {
		return nil, game.State{}, err
	}
	return e.puzzle, e.session.Snapshot(), nil
}

// Act implements i.PuzzleManager.
func (ps *PuzzleService) Act(id uuid.UUID, key string) (game.State, error) {
	e, err := ps.lookup(id)
	if err != nil {
		return game.State{}, err
	}

	action, err := game.ParseAction(key)
	if err != nil {
		return game.State{}, err
	}

	if err := e.session.Apply(action); err != nil {
		ps.logger.Debug(fmt.Sprintf("Rejected action %s on puzzle %s: %s", action, id, err))
		return e.session.Snapshot(), err
	}

	state := e.session.Snapshot()
	if state.Won {
		ps.logger.Info(fmt.Sprintf("Puzzle %s won after %d moves", id, state.Moves))
	}
	return state, nil
}

// Delete implements i.PuzzleManager.
func (ps *PuzzleService) Delete(id uuid.UUID) error {
	ps.Lock()
	defer ps.Unlock()

	if _, ok := ps.puzzles[id]; !ok {
		return ErrPuzzleNotFound
	}
	delete(ps.puzzles, id)
	ps.logger.Info(fmt.Sprintf("Puzzle deleted: ID=%s", id))
	return nil
}

// Count returns the number of live puzzles.
func (ps *PuzzleService) Count() int {
	ps.RLock()
	defer ps.RUnlock()
	return len(ps.puzzles)
}

func (ps *PuzzleService) lookup(id uuid.UUID) (entry, error) {
	ps.RLock()
	defer ps.RUnlock()

	e, ok := ps.puzzles[id]
	if !ok {
		return entry{}, ErrPuzzleNotFound
	}
	return e, nil
}

// newRand returns a deterministic source for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}
