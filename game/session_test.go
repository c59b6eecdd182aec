package game

import (
	"math/rand/v2"
	"testing"

	"github.com/beka-birhanu/rabbit-run/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// field builds a grid from symbol rows and returns it with the rabbit position.
func field(t *testing.T, rows ...string) (*maze.Grid, maze.Position) {
	t.Helper()

	cells := map[byte]maze.Cell{'r': maze.Rabbit, 'O': maze.Hole, 'c': maze.Carrot, '-': maze.Stone, ' ': maze.Empty}
	g := maze.NewGrid(len(rows))
	var rabbit maze.Position
	for r, row := range rows {
		for c := range len(row) {
			p := maze.Position{Row: r, Col: c}
			g.Set(p, cells[row[c]])
			if row[c] == 'r' {
				rabbit = p
			}
		}
	}
	return g, rabbit
}

func TestNewSession(t *testing.T) {
	t.Run("Rabbit on stone", func(t *testing.T) {
		g, _ := field(t, "r-", "--")
		_, err := NewSession(g, maze.Position{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrInvalidRabbitPosition)
	})

	t.Run("Rabbit off the grid", func(t *testing.T) {
		g, _ := field(t, "r-", "--")
		_, err := NewSession(g, maze.Position{Row: 2, Col: 0})
		assert.ErrorIs(t, err, ErrInvalidRabbitPosition)
	})

	t.Run("Source grid is untouched", func(t *testing.T) {
		g, rabbit := field(t, "rc", "-O")
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)

		require.NoError(t, s.Apply(Move(maze.Right)))
		require.NoError(t, s.Apply(Pickup()))

		assert.Equal(t, []string{"rc", "-O"}, g.Rows())
		assert.Equal(t, []string{" r", "-O"}, s.Snapshot().Rows)
	})
}

func TestSessionMoves(t *testing.T) {
	g, rabbit := field(t,
		"r c",
		"-O-",
		"---",
	)
	s, err := NewSession(g, rabbit)
	require.NoError(t, err)

	t.Run("Off the grid", func(t *testing.T) {
		assert.ErrorIs(t, s.Apply(Move(maze.Up)), ErrInvalidMove)
		assert.ErrorIs(t, s.Apply(Move(maze.Left)), ErrInvalidMove)
		assert.Equal(t, rabbit, s.Rabbit())
	})

	t.Run("Into stone", func(t *testing.T) {
		assert.ErrorIs(t, s.Apply(Move(maze.Down)), ErrInvalidMove)
		assert.Equal(t, rabbit, s.Rabbit())
	})

	t.Run("Walk and leave the start cell passable", func(t *testing.T) {
		require.NoError(t, s.Apply(Move(maze.Right)))
		require.NoError(t, s.Apply(Move(maze.Left)))
		require.NoError(t, s.Apply(Move(maze.Right)))
		assert.Equal(t, maze.Position{Row: 0, Col: 1}, s.Rabbit())
	})

	t.Run("Hole without carrot does not win", func(t *testing.T) {
		require.NoError(t, s.Apply(Move(maze.Down)))
		assert.True(t, s.OnHole())
		assert.False(t, s.Won())
		require.NoError(t, s.Apply(Move(maze.Up)))
	})

	t.Run("Pickup needs a carrot", func(t *testing.T) {
		assert.ErrorIs(t, s.Apply(Pickup()), ErrNoCarrot)
	})

	t.Run("Collect carrot then win", func(t *testing.T) {
		require.NoError(t, s.Apply(Move(maze.Right)))
		require.NoError(t, s.Apply(Pickup()))
		assert.ErrorIs(t, s.Apply(Pickup()), ErrNoCarrot)
		require.NoError(t, s.Apply(Move(maze.Left)))
		require.NoError(t, s.Apply(Move(maze.Down)))

		state := s.Snapshot()
		assert.True(t, state.Won)
		assert.Equal(t, 1, state.CarrotsCollected)
		assert.Equal(t, []string{"   ", "-r-", "---"}, state.Rows)
	})
}

func TestSessionJump(t *testing.T) {
	t.Run("Over a hole", func(t *testing.T) {
		g, rabbit := field(t,
			"rO ",
			"---",
			"---",
		)
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)

		require.NoError(t, s.Apply(Jump(maze.Right)))
		assert.Equal(t, maze.Position{Row: 0, Col: 2}, s.Rabbit())
		assert.Equal(t, 1, s.Snapshot().Moves)
	})

	t.Run("Nothing to jump over", func(t *testing.T) {
		g, rabbit := field(t,
			"r  ",
			"---",
			"---",
		)
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)
		assert.ErrorIs(t, s.Apply(Jump(maze.Right)), ErrInvalidMove)
	})

	t.Run("Landing on stone", func(t *testing.T) {
		g, rabbit := field(t,
			"rO-",
			"---",
			"---",
		)
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)
		assert.ErrorIs(t, s.Apply(Jump(maze.Right)), ErrInvalidMove)
	})

	t.Run("Landing off the grid", func(t *testing.T) {
		g, rabbit := field(t,
			"-Or",
			"---",
			"---",
		)
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)
		assert.ErrorIs(t, s.Apply(Jump(maze.Right)), ErrInvalidMove)
		assert.ErrorIs(t, s.Apply(Jump(maze.Up)), ErrInvalidMove)

		g, rabbit = field(t,
			"-O-",
			"-r-",
			"---",
		)
		s, err = NewSession(g, rabbit)
		require.NoError(t, err)
		assert.ErrorIs(t, s.Apply(Jump(maze.Up)), ErrInvalidMove)
		assert.Equal(t, rabbit, s.Rabbit())
	})
}

func TestSessionReplay(t *testing.T) {
	t.Run("Solver path ends on a hole", func(t *testing.T) {
		for seed := range uint64(50) {
			g, rabbit, holes, err := maze.Generate(6, 3, 2, rand.New(rand.NewPCG(seed, 1)))
			require.NoError(t, err)

			path, found := maze.Solve(g, rabbit, holes)
			if !found {
				continue
			}

			s, err := NewSession(g, rabbit)
			require.NoError(t, err)
			require.NoError(t, s.Replay(path), "seed %d", seed)
			assert.True(t, s.OnHole(), "seed %d", seed)
			assert.True(t, holes.Contains(s.Rabbit()))
		}
	})

	t.Run("Rejected step", func(t *testing.T) {
		g, rabbit := field(t,
			"r -",
			"---",
			"---",
		)
		s, err := NewSession(g, rabbit)
		require.NoError(t, err)

		err = s.Replay(maze.Path{maze.Right, maze.Right})
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, maze.Position{Row: 0, Col: 1}, s.Rabbit())
	})
}

func TestParseAction(t *testing.T) {
	valid := map[string]Action{
		"w":  Move(maze.Up),
		"a":  Move(maze.Left),
		"s":  Move(maze.Down),
		"d":  Move(maze.Right),
		"jw": Jump(maze.Up),
		"jd": Jump(maze.Right),
		"p":  Pickup(),
	}
	for key, want := range valid {
		got, err := ParseAction(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got)
		assert.Equal(t, key, got.String())
	}

	for _, key := range []string{"", "q", "x", "jj", "jp", "wd", "jwd"} {
		_, err := ParseAction(key)
		assert.ErrorIs(t, err, ErrUnknownAction, key)
	}
}
