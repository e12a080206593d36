package camera

import "fmt"

// Action is a single camera movement triggered by a key.
type Action uint8

const (
	ActionNone Action = iota
	RotateLeft
	RotateRight
	StrafeLeft
	StrafeRight
	PushForward
	PushBack
	PedestalUp
	PedestalDown
	ResetView
)

var actionNames = map[Action]string{
	RotateLeft:   "rotate-left",
	RotateRight:  "rotate-right",
	StrafeLeft:   "strafe-left",
	StrafeRight:  "strafe-right",
	PushForward:  "push-forward",
	PushBack:     "push-back",
	PedestalUp:   "pedestal-up",
	PedestalDown: "pedestal-down",
	ResetView:    "reset",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", a)
}

// DefaultBindings maps key names to actions.
var DefaultBindings = map[string]Action{
	"J":     RotateLeft,
	"L":     RotateRight,
	"A":     StrafeLeft,
	"D":     StrafeRight,
	"W":     PushForward,
	"S":     PushBack,
	"I":     PedestalUp,
	"K":     PedestalDown,
	"Space": ResetView,
}

// Do performs one step of a.
func (c *Camera) Do(a Action) {
	switch a {
	case RotateLeft:
		c.Rotate(1)
	case RotateRight:
		c.Rotate(-1)
	case StrafeLeft:
		c.Strafe(1)
	case StrafeRight:
		c.Strafe(-1)
	case PushForward:
		c.PushIn(1)
	case PushBack:
		c.PushIn(-1)
	case PedestalUp:
		c.Pedestal(1)
	case PedestalDown:
		c.Pedestal(-1)
	case ResetView:
		c.Reset()
	}
}
