package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionThrust},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionTurnLeft},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{runeKey('w'), ActionThrust},
		{runeKey('D'), ActionTurnRight},
		{runeKey(' '), ActionFire},
		{runeKey('z'), ActionNone},
	}
	for _, c := range cases {
		if got := KeyToAction(c.ev); got != c.want {
			t.Errorf("KeyToAction(%v)=%v, want %v", c.ev.Name(), got, c.want)
		}
	}
}

func TestPressedOnlyOnFirstFrame(t *testing.T) {
	clk := &fakeNow{t: time.Unix(0, 0)}
	s := NewSource(DefaultHoldWindow, clk.now)

	s.Feed(runeKey(' '))
	s.EndFrame()
	if !s.Pressed(ActionFire) || !s.Held(ActionFire) {
		t.Fatal("fire should be pressed and held on the first frame")
	}

	// Key repeat inside the hold window is held, not pressed again.
	clk.t = clk.t.Add(30 * time.Millisecond)
	s.Feed(runeKey(' '))
	s.EndFrame()
	if s.Pressed(ActionFire) {
		t.Fatal("key repeat reported as a new press")
	}
	if !s.Held(ActionFire) {
		t.Fatal("key repeat should keep the action held")
	}
}

func TestHeldSpansInitialRepeatDelay(t *testing.T) {
	clk := &fakeNow{t: time.Unix(0, 0)}
	s := NewSource(DefaultHoldWindow, clk.now)
	s.Feed(runeKey('w'))
	s.EndFrame()

	// Terminals wait 250-600 ms before the first auto-repeat.
	for elapsed := 16 * time.Millisecond; elapsed <= 400*time.Millisecond; elapsed += 16 * time.Millisecond {
		clk.t = time.Unix(0, 0).Add(elapsed)
		s.EndFrame()
		if !s.Held(ActionThrust) {
			t.Fatalf("thrust dropped %v after the press, before the first repeat", elapsed)
		}
	}

	s.Feed(runeKey('w'))
	s.EndFrame()
	if s.Pressed(ActionThrust) || !s.Held(ActionThrust) {
		t.Fatal("first repeat should continue the hold, not start a new press")
	}
}

func TestHeldExpiresAfterWindow(t *testing.T) {
	clk := &fakeNow{t: time.Unix(0, 0)}
	s := NewSource(DefaultHoldWindow, clk.now)
	s.Feed(runeKey('w'))
	s.EndFrame()

	clk.t = clk.t.Add(DefaultHoldWindow + time.Millisecond)
	s.EndFrame()
	if s.Held(ActionThrust) {
		t.Fatal("action still held after the hold window")
	}

	s.Feed(runeKey('w'))
	s.EndFrame()
	if !s.Pressed(ActionThrust) {
		t.Fatal("pressing again after release should register a press")
	}
}

func TestFeedIgnoresNonKeyEvents(t *testing.T) {
	s := NewSource(DefaultHoldWindow, nil)
	s.Feed(tcell.NewEventResize(80, 24))
	s.EndFrame()
	for a := ActionNone; a < actionCount; a++ {
		if s.Pressed(a) || s.Held(a) {
			t.Fatalf("action %d active after a resize event", a)
		}
	}
}
