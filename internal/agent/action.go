package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

// Action is a discrete control choice for one tick.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionNone
)

// NumActions is the size of the discrete action space.
const NumActions = 5

// ErrUnknownAction is returned for actions outside [0, NumActions).
var ErrUnknownAction = errors.New("agent: unknown action")

var actionNames = [NumActions]string{"up", "down", "left", "right", "none"}

// String returns the action name.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Valid reports whether a is part of the action space.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

// Signal converts the action into a digital control signal.
func (a Action) Signal() dodge.ControlSignal {
	return dodge.DigitalSignal(a == ActionUp, a == ActionDown, a == ActionLeft, a == ActionRight)
}

// ParseAction resolves an action by name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
