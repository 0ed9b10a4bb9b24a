package render

import (
	"astral-assault/internal/arena"
	"astral-assault/internal/geom"
)

// Camera maps arena coordinates onto a terminal viewport. The whole arena is
// always visible, so the camera only scales.
type Camera struct {
	Arena      arena.Arena
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera fitting a onto a viewW×viewH viewport.
func NewCamera(a arena.Arena, viewW, viewH int) *Camera {
	return &Camera{Arena: a, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts a world position to a screen cell.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Vec2) (sx, sy int, visible bool) {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 || c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return 0, 0, false
	}
	sx = int(p.X / c.Arena.Width * float64(c.ViewWidth-1))
	sy = int(p.Y / c.Arena.Height * float64(c.ViewHeight-1))
	visible = p.X >= 0 && p.Y >= 0 && sx < c.ViewWidth && sy < c.ViewHeight
	return
}
