package overlay

import "fmt"

// State is the interaction state of the overlay.
type State int

const (
	// StateIdle means the grid is hidden and keys are ignored.
	StateIdle State = iota
	// StateBrowsing means the grid is visible and accepting label input.
	StateBrowsing
	// StateAwaitingClick means one cell is resolved and a click choice is pending.
	StateAwaitingClick
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBrowsing:
		return "browsing"
	case StateAwaitingClick:
		return "awaiting-click"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Visible reports whether the grid is on screen in this state.
func (s State) Visible() bool {
	return s != StateIdle
}

// Button is a simulated pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Click choice keys accepted while a cell is resolved.
const (
	ChoiceLeft   = '1'
	ChoiceRight  = '2'
	ChoiceDouble = '3'
)
