package arena

import "astral-assault/internal/geom"

// Arena is the fixed playfield. Positions on [0, Width] × [0, Height]
// (inclusive) are inside.
type Arena struct {
	Width, Height float64
}

// New creates an Arena of the given size.
func New(width, height float64) Arena {
	return Arena{Width: width, Height: height}
}

// InBounds reports whether p lies inside the arena on both axes.
func (a Arena) InBounds(p geom.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// Wrap moves an axis that left the arena to the opposite edge: below zero
// goes to the bound, past the bound goes to zero.
func (a Arena) Wrap(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: wrapAxis(p.X, a.Width), Y: wrapAxis(p.Y, a.Height)}
}

// Center returns the middle of the arena.
func (a Arena) Center() geom.Vec2 {
	return geom.Vec2{X: a.Width / 2, Y: a.Height / 2}
}

func wrapAxis(v, bound float64) float64 {
	switch {
	case v < 0:
		return bound
	case v > bound:
		return 0
	}
	return v
}
