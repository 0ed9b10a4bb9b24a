package ecs

import (
	"errors"
	"fmt"

	"astral-assault/internal/geom"
)

// ErrInvalidMass is returned when a solid collider is built with mass <= 0.
var ErrInvalidMass = errors.New("solid collider needs positive mass")

// Collider is the geometric and physical descriptor of an entity. Owner is a
// lookup key into the World, never a lifetime reference.
type Collider struct {
	Owner EntityID
	Shape geom.Rect
	Solid bool
	Mass  float64
}

// NewCollider builds a w×h collider. Solid colliders must have positive mass.
func NewCollider(w, h int, solid bool, mass float64) (*Collider, error) {
	if solid && mass <= 0 {
		return nil, fmt.Errorf("collider %dx%d mass %v: %w", w, h, mass, ErrInvalidMass)
	}
	return &Collider{Shape: geom.Rect{W: w, H: h}, Solid: solid, Mass: mass}, nil
}

// SetPosition centres the shape on p.
func (c *Collider) SetPosition(p geom.Point) {
	c.Shape = c.Shape.MoveTo(p)
}

// Position returns the shape's centre.
func (c *Collider) Position() geom.Vec2 {
	return c.Shape.Center()
}

// ColliderRegistry is implemented by the collision system.
type ColliderRegistry interface {
	AddCollider(c *Collider)
	RemoveCollider(c *Collider)
}
