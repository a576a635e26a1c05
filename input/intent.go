// Package input turns terminal events into game intents
package input

import "github.com/lixenwraith/fishgrid/components"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Movement, one cell per key press
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	IntentWait // tick without moving
	IntentRestart
	IntentQuit
	IntentResize

	// Mouse
	IntentClick // left press on a screen cell
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentUp:      "up",
	IntentDown:    "down",
	IntentLeft:    "left",
	IntentRight:   "right",
	IntentWait:    "wait",
	IntentRestart: "restart",
	IntentQuit:    "quit",
	IntentResize:  "resize",
	IntentClick:   "click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one decoded input event
// X and Y are screen coordinates, set only for IntentClick
type Intent struct {
	Type IntentType
	X, Y int
}

// Direction returns the move an intent asks for
func (i Intent) Direction() (components.Direction, bool) {
	switch i.Type {
	case IntentUp:
		return components.DirUp, true
	case IntentDown:
		return components.DirDown, true
	case IntentLeft:
		return components.DirLeft, true
	case IntentRight:
		return components.DirRight, true
	}
	return components.DirNone, false
}

// Ticks reports whether the intent advances the simulation
func (i Intent) Ticks() bool {
	_, move := i.Direction()
	return move || i.Type == IntentWait
}
