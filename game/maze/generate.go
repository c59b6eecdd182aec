package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidConfiguration is matched by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid maze configuration")

// ConfigurationError reports generation parameters that cannot produce a grid.
type ConfigurationError struct {
	Size    int
	Carrots int
	Holes   int
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid maze configuration (size=%d carrots=%d holes=%d): %s", e.Size, e.Carrots, e.Holes, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Validate checks generation parameters without generating anything.
func Validate(size, numCarrots, numHoles int) error {
	cfgErr := func(reason string) error {
		return &ConfigurationError{Size: size, Carrots: numCarrots, Holes: numHoles, Reason: reason}
	}

	switch {
	case size < 1:
		return cfgErr("size must be at least 1")
	case numCarrots < 0:
		return cfgErr("carrot count must not be negative")
	case numHoles < 0:
		return cfgErr("hole count must not be negative")
	case numCarrots+numHoles+1 > size*size:
		return cfgErr(fmt.Sprintf("%d cells cannot hold the rabbit, %d holes and %d carrots", size*size, numHoles, numCarrots))
	}
	return nil
}

// Generate builds a random size x size grid holding one rabbit, numHoles holes and
// numCarrots carrots on distinct cells. Every other cell is Stone.
//
// Cells are drawn without replacement from the list of free cells, so generation always
// terminates. A nil rng uses a randomly seeded source.
func Generate(size, numCarrots, numHoles int, rng *rand.Rand) (*Grid, Position, HoleSet, error) {
	if err := Validate(size, numCarrots, numHoles); err != nil {
		return nil, Position{}, nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := NewGrid(size)

	free := make([]Position, 0, size*size)
	for row := range size {
		for col := range size {
			free = append(free, Position{Row: row, Col: col})
		}
	}

	// take removes a uniformly random free cell.
	take := func() Position {
		i := rng.IntN(len(free))
		p := free[i]
		last := len(free) - 1
		free[i] = free[last]
		free = free[:last]
		return p
	}

	rabbit := take()
	g.Set(rabbit, Rabbit)

	holes := make(HoleSet, numHoles)
	for range numHoles {
		p := take()
		g.Set(p, Hole)
		holes.Add(p)
	}

	for range numCarrots {
		g.Set(take(), Carrot)
	}

	for _, p := range free {
		g.Set(p, Stone)
	}

	return g, rabbit, holes, nil
}
