package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the status shown under the arena.
type HUD struct {
	Score     int
	HP        float64
	MaxHP     float64
	Rocks     int
	Colliders int
	Contacts  int
	Frame     uint64
	Message   string
}

// DrawHUD renders the separator and status line at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("SCORE %d  HP %.0f/%.0f  ROCKS %d  COLLIDERS %d  CONTACTS %d  FRAME %d",
		h.Score, h.HP, h.MaxHP, h.Rocks, h.Colliders, h.Contacts, h.Frame)
	end := r.DrawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if h.Message != "" {
		r.DrawText(end+2, hudY+1, h.Message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// DrawText writes text starting at column x and returns the column after it.
// Wide runes advance two columns.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

// DrawCentered writes text centred horizontally on row y.
func (r *Renderer) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	r.DrawText(max(0, x), y, text, style)
}
