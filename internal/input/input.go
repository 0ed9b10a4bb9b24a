package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionThrust
	ActionReverse
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionConfirm
	ActionQuit
	actionCount
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// Terminals report key repeats but never releases.
const DefaultHoldWindow = 500 * time.Millisecond

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionThrust
	case tcell.KeyDown:
		return ActionReverse
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'w', 'W':
		return ActionThrust
	case 's', 'S':
		return ActionReverse
	case 'a', 'A':
		return ActionTurnLeft
	case 'd', 'D':
		return ActionTurnRight
	case ' ':
		return ActionFire
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Source collects key events between frames. Pressed reports actions first
// seen this frame, Held reports actions seen within the hold window.
type Source struct {
	window  time.Duration
	now     func() time.Time
	last    [actionCount]time.Time
	frame   [actionCount]bool
	pressed [actionCount]bool
	prev    [actionCount]bool
}

// NewSource creates a Source reading time from now.
func NewSource(window time.Duration, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{window: window, now: now}
}

// Feed records one terminal event. Non-key events are ignored.
func (s *Source) Feed(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	a := KeyToAction(key)
	if a == ActionNone {
		return
	}
	s.frame[a] = true
	s.last[a] = s.now()
}

// EndFrame turns the events fed since the previous call into this frame's
// pressed/held view.
func (s *Source) EndFrame() {
	held := s.heldNow()
	for a := range s.pressed {
		s.pressed[a] = s.frame[a] && !s.prev[a]
		s.prev[a] = held[a]
		s.frame[a] = false
	}
}

// Pressed reports whether a started this frame.
func (s *Source) Pressed(a Action) bool {
	return a < actionCount && s.pressed[a]
}

// Held reports whether a is currently held.
func (s *Source) Held(a Action) bool {
	if a >= actionCount || s.last[a].IsZero() {
		return false
	}
	return s.now().Sub(s.last[a]) <= s.window
}

func (s *Source) heldNow() [actionCount]bool {
	var held [actionCount]bool
	for a := range held {
		held[a] = s.Held(Action(a))
	}
	return held
}
