package render

import (
	"math"
	"sort"

	"astral-assault/internal/arena"
	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 2

// healthBarWidth is the health bar length in cells.
const healthBarWidth = 5

// Renderer draws the arena onto a tcell screen. It only reads entity state.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer fitting a onto the screen above the HUD.
func NewRenderer(screen tcell.Screen, a arena.Arena) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(a, 0, 0)}
	r.Resize()
	return r
}

// Resize refits the camera after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-hudRows)
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order    int
	pos      geom.Vec2
	rotation float64
	health   float64
	actor    bool
	sprite   Sprite
}

// DrawWorld clears the screen and renders every entity, lowest RenderOrder
// first, with health bars above actors.
func (r *Renderer) DrawWorld(w *ecs.World) {
	r.screen.Clear()

	var entities []renderableEntity
	w.Each(func(e *ecs.Entity) {
		s := Lookup(e.Sprite)
		entities = append(entities, renderableEntity{
			order:    s.RenderOrder,
			pos:      e.Position,
			rotation: e.Rotation,
			health:   e.HealthFraction(),
			actor:    e.IsActor,
			sprite:   s,
		})
	})
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.sprite.Color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.sprite.GlyphFor(e.rotation), style)
		if e.actor && sy > 0 {
			r.drawHealthBar(sx-healthBarWidth/2, sy-1, e.health)
		}
	}
}

// drawHealthBar draws ceil(fraction*width) filled cells followed by empty ones.
func (r *Renderer) drawHealthBar(x, y int, fraction float64) {
	filled := FilledCells(fraction, healthBarWidth)
	for i := 0; i < healthBarWidth; i++ {
		color := healthEmpty
		if i < filled {
			color = healthFull
		}
		r.screen.SetContent(x+i, y, '▀', nil, tcell.StyleDefault.Foreground(color))
	}
}

// FilledCells returns how many of width cells a health bar fills.
func FilledCells(fraction float64, width int) int {
	n := int(math.Ceil(fraction * float64(width)))
	return max(0, min(n, width))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
