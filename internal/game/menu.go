package game

import (
	"fmt"

	"astral-assault/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Menu is the title screen.
type Menu struct {
	g *Game
}

// NewMenu returns the title screen state.
func NewMenu(g *Game) *Menu { return &Menu{g: g} }

func (m *Menu) Enter() {}
func (m *Menu) Exit()  {}

// Update starts a run on confirm or fire and quits on quit.
func (m *Menu) Update(float64) {
	in := m.g.input
	switch {
	case in.Pressed(input.ActionConfirm), in.Pressed(input.ActionFire):
		m.g.ChangeState(NewGameplay(m.g))
	case in.Pressed(input.ActionQuit):
		m.g.Quit()
	}
}

func (m *Menu) Draw(screen tcell.Screen) {
	screen.Clear()
	_, h := screen.Size()
	r := m.g.renderer
	y := h/2 - 4

	r.DrawCentered(y, "A S T R A L   A S S A U L T", styleTitle)
	y += 2
	r.DrawCentered(y, "W/S or ↑/↓ thrust   A/D or ←/→ turn   SPACE fire", styleDim)
	y += 2
	r.DrawCentered(y, "[ENTER] Launch   [Q] Quit", styleText)
	if m.g.best > 0 {
		y += 2
		r.DrawCentered(y, fmt.Sprintf("Best score %d", m.g.best), styleGood)
	}
}
