package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"astral-assault/internal/arena"
	"astral-assault/internal/clock"
	"astral-assault/internal/config"
	"astral-assault/internal/input"
	"astral-assault/internal/render"
	"astral-assault/internal/state"

	"github.com/gdamore/tcell/v2"
)

// maxFrameDt caps the step after a stall (suspend, slow terminal).
const maxFrameDt = 0.1

// Host is what states use to drive the game. Requests made during Update
// take effect once Update returns.
type Host interface {
	ChangeState(next state.State)
	Quit()
}

// Game is the top-level orchestrator: it owns the screen, the input source
// and the state machine, and runs the frame loop.
type Game struct {
	cfg      config.Config
	log      *slog.Logger
	screen   tcell.Screen
	renderer *render.Renderer
	clock    clock.Clock
	input    *input.Source
	rng      *rand.Rand
	machine  *state.Machine

	next     state.State
	quitting bool
	best     int
}

// New creates a Game on the process terminal.
func New(cfg config.Config, log *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, clock.Real{}, log), nil
}

// NewWithScreen creates a Game on an already initialised screen. The SSH
// server and tests use it.
func NewWithScreen(screen tcell.Screen, cfg config.Config, clk clock.Clock, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: render.NewRenderer(screen, arena.New(cfg.WorldWidth, cfg.WorldHeight)),
		clock:    clk,
		input:    input.NewSource(input.DefaultHoldWindow, clk.Now),
		rng:      rand.New(rand.NewSource(seed)),
	}
	g.machine = state.New(NewMenu(g))
	return g
}

// ChangeState queues next to replace the active state after this Update.
func (g *Game) ChangeState(next state.State) { g.next = next }

// Quit ends Run after this Update.
func (g *Game) Quit() { g.quitting = true }

// State returns the active state.
func (g *Game) State() state.State { return g.machine.Current() }

// Best returns the best score of this session.
func (g *Game) Best() int { return g.best }

// Run is the main loop. It returns nil when the player quits or ctx is
// cancelled, and finalises the screen either way.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.FrameDuration())
	defer ticker.Stop()

	g.log.Info("game started", "tick_rate", g.cfg.TickRate,
		"world", fmt.Sprintf("%gx%g", g.cfg.WorldWidth, g.cfg.WorldHeight))
	g.draw()
	last := g.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			g.HandleEvent(ev)
		case <-ticker.C:
			now := g.clock.Now()
			dt := min(now.Sub(last).Seconds(), maxFrameDt)
			last = now
			if !g.Frame(dt) {
				g.log.Info("game quit", "best", g.best)
				return nil
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised or done
// is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent feeds one terminal event to the input source or the renderer.
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		g.input.Feed(ev)
	}
}

// Frame advances the active state by dt seconds, applies any requested
// transition and redraws. It reports false once Quit has been requested.
func (g *Game) Frame(dt float64) bool {
	g.input.EndFrame()
	g.machine.Update(dt)
	if next := g.next; next != nil {
		g.next = nil
		g.log.Debug("state change",
			"from", fmt.Sprintf("%T", g.machine.Current()),
			"to", fmt.Sprintf("%T", next))
		g.machine.ChangeState(next)
	}
	if g.quitting {
		return false
	}
	g.draw()
	return true
}

func (g *Game) draw() {
	g.machine.Draw(g.screen)
	g.screen.Show()
}

// Menu / game-over text styles.
var (
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleGood  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)
