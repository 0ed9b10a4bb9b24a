package game

import (
	"fmt"

	"astral-assault/internal/input"

	"github.com/gdamore/tcell/v2"
)

// GameOver shows the result of a finished run.
type GameOver struct {
	g       *Game
	score   int
	wave    int
	newBest bool
}

// NewGameOver returns the end screen for a run that scored score points and
// reached wave.
func NewGameOver(g *Game, score, wave int) *GameOver {
	return &GameOver{g: g, score: score, wave: wave}
}

// Enter records the session best.
func (s *GameOver) Enter() {
	if s.score > s.g.best {
		s.g.best = s.score
		s.newBest = true
	}
	s.g.log.Info("run finished", "score", s.score, "wave", s.wave, "best", s.g.best)
}

func (s *GameOver) Exit() {}

// Update restarts on confirm or fire and returns to the menu on quit.
func (s *GameOver) Update(float64) {
	in := s.g.input
	switch {
	case in.Pressed(input.ActionConfirm), in.Pressed(input.ActionFire):
		s.g.ChangeState(NewGameplay(s.g))
	case in.Pressed(input.ActionQuit):
		s.g.ChangeState(NewMenu(s.g))
	}
}

func (s *GameOver) Draw(screen tcell.Screen) {
	screen.Clear()
	_, h := screen.Size()
	r := s.g.renderer
	y := h/2 - 4

	r.DrawCentered(y, "THE BELT CLAIMS YOU", styleBad)
	y += 2
	r.DrawCentered(y, fmt.Sprintf("Score %d   Wave %d", s.score, s.wave), styleText)
	y++
	if s.newBest {
		r.DrawCentered(y, "[NEW BEST]", styleGood)
	} else {
		r.DrawCentered(y, fmt.Sprintf("Best %d", s.g.best), styleDim)
	}
	y += 2
	r.DrawCentered(y, "[ENTER] Try Again   [Q] Menu", styleTitle)
}
