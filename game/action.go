package game

import (
	"fmt"

	"github.com/beka-birhanu/rabbit-run/game/maze"
)

// ActionKind tells how an Action changes the session.
type ActionKind uint8

// Action kinds.
const (
	MoveAction   ActionKind = iota // Step one cell.
	JumpAction                     // Leap over an adjacent hole.
	PickupAction                   // Collect the carrot under the rabbit.
)

// Action is a single player command.
type Action struct {
	Kind      ActionKind
	Direction maze.Direction // Ignored for PickupAction.
}

// Move returns a step action.
func Move(d maze.Direction) Action {
	return Action{Kind: MoveAction, Direction: d}
}

// Jump returns a jump action.
func Jump(d maze.Direction) Action {
	return Action{Kind: JumpAction, Direction: d}
}

// Pickup returns a carrot pickup action.
func Pickup() Action {
	return Action{Kind: PickupAction}
}

// String returns the key sequence that produces the action.
func (a Action) String() string {
	switch a.Kind {
	case JumpAction:
		return "j" + string(a.Direction.Key())
	case PickupAction:
		return "p"
	default:
		return string(a.Direction.Key())
	}
}

// ParseAction converts a key sequence into an action.
// Accepted keys are w, a, s, d for moves, j followed by a direction key for jumps, and p for pickup.
func ParseAction(key string) (Action, error) {
	switch {
	case key == "p":
		return Pickup(), nil
	case len(key) == 1:
		if d, ok := maze.DirectionFromKey(key[0]); ok {
			return Move(d), nil
		}
	case len(key) == 2 && key[0] == 'j':
		if d, ok := maze.DirectionFromKey(key[1]); ok {
			return Jump(d), nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, key)
}
