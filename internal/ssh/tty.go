// Package ssh adapts gliderlabs/ssh sessions to tcell terminals.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Session is the part of a gliderlabs session the tty needs.
type Session interface {
	io.ReadWriteCloser
}

// SessionTty implements tcell.Tty over one SSH session, so every connected
// client drives its own tcell.Screen.
type SessionTty struct {
	session Session
	winCh   <-chan gossh.Window

	mu      sync.Mutex
	window  gossh.Window
	cb      func()
	watched bool
}

// NewSessionTty wraps s. win is the size from the pty request; winCh
// delivers later window changes and is drained until the session closes it.
func NewSessionTty(s Session, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: win, winCh: winCh}
}

// NewScreen creates an initialised screen on the session for the given
// terminal type.
func NewScreen(tty *SessionTty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	// tcell resolves terminfo from $TERM at construction.
	prev, had := lookupTerm()
	setTerm(term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	restoreTerm(prev, had)
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel opens before the
// screen and the handler owns its lifetime.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine reading winCh; later calls only replace cb.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	start := !t.watched && t.winCh != nil
	t.watched = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
