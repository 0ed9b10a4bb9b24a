package state

import "github.com/gdamore/tcell/v2"

// State is one top-level game screen.
type State interface {
	Enter()
	Exit()
	Update(dt float64)
	Draw(screen tcell.Screen)
}

// Machine holds the single active state. Any state may follow any other;
// callers decide what is a valid transition.
type Machine struct {
	current State
}

// New installs initial and calls its Enter.
func New(initial State) *Machine {
	m := &Machine{current: initial}
	if initial != nil {
		initial.Enter()
	}
	return m
}

// ChangeState exits the current state, installs next and enters it.
func (m *Machine) ChangeState(next State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	if next != nil {
		next.Enter()
	}
}

// Current returns the active state.
func (m *Machine) Current() State { return m.current }

// Update forwards the frame to the active state.
func (m *Machine) Update(dt float64) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Draw renders the active state.
func (m *Machine) Draw(screen tcell.Screen) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}
