package input

import "github.com/gdamore/tcell/v2"

// Machine decodes tcell events against a key table
// It remembers the mouse button state so a held button clicks once
type Machine struct {
	keys    *KeyTable
	buttons tcell.ButtonMask
}

// NewMachine returns a decoder for kt
func NewMachine(kt *KeyTable) *Machine {
	return &Machine{keys: kt}
}

// Process maps one event to an intent; unbound events give IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if t, ok := m.keys.Runes[ev.Rune()]; ok {
			return Intent{Type: t}
		}
		return Intent{}
	}
	if t, ok := m.keys.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: t}
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons
	if !pressed {
		return Intent{}
	}
	x, y := ev.Position()
	return Intent{Type: IntentClick, X: x, Y: y}
}
