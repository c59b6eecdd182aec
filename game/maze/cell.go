package maze

// Cell is the content of a single grid square.
type Cell uint8

// Cell kinds.
const (
	Empty  Cell = iota // Empty is only seen during placement and after a carrot is picked up.
	Rabbit             // Rabbit marks the rabbit's starting square.
	Hole               // Hole is a goal square.
	Carrot             // Carrot is a collectible square.
	Stone              // Stone is impassable.
)

// Symbol returns the single character used to draw the cell.
func (c Cell) Symbol() byte {
	switch c {
	case Rabbit:
		return 'r'
	case Hole:
		return 'O'
	case Carrot:
		return 'c'
	case Stone:
		return '-'
	default:
		return ' '
	}
}

// String returns the name of the cell kind.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Rabbit:
		return "Rabbit"
	case Hole:
		return "Hole"
	case Carrot:
		return "Carrot"
	case Stone:
		return "Stone"
	default:
		return "Unknown"
	}
}

// Passable reports whether the rabbit may stand on the cell.
func (c Cell) Passable() bool {
	return c != Stone
}

// Position represents the position of a cell in the grid.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Direction is one of the four moves available to the rabbit.
type Direction uint8

// Directions in the order the solver expands them.
const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in solver expansion order.
var Directions = [...]Direction{Left, Right, Up, Down}

// Delta returns the row and column offset of a single step.
func (d Direction) Delta() Position {
	switch d {
	case Left:
		return Position{Row: 0, Col: -1}
	case Right:
		return Position{Row: 0, Col: 1}
	case Up:
		return Position{Row: -1, Col: 0}
	default:
		return Position{Row: 1, Col: 0}
	}
}

// Key returns the keyboard key bound to the direction.
func (d Direction) Key() byte {
	switch d {
	case Left:
		return 'a'
	case Right:
		return 'd'
	case Up:
		return 'w'
	default:
		return 's'
	}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	default:
		return "Down"
	}
}

// DirectionFromKey maps a movement key back to its direction.
func DirectionFromKey(k byte) (Direction, bool) {
	for _, d := range Directions {
		if d.Key() == k {
			return d, true
		}
	}
	return 0, false
}

// directionBetween returns the single step that leads from one position to an adjacent one.
func directionBetween(from, to Position) Direction {
	switch {
	case to.Row > from.Row:
		return Down
	case to.Row < from.Row:
		return Up
	case to.Col < from.Col:
		return Left
	default:
		return Right
	}
}
