package factory

import (
	"fmt"

	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"
)

// Sprite names resolved by the renderer's palette.
const (
	SpritePlayer    = "player"
	SpriteBullet    = "bullet"
	SpriteAsteroid1 = "asteroid1"
	SpriteAsteroid2 = "asteroid2"
	SpriteAsteroid3 = "asteroid3"
)

// spawnWithCollider attaches a size×size collider to e and spawns it.
func spawnWithCollider(w *ecs.World, e *ecs.Entity, size int, solid bool, mass float64) (ecs.EntityID, error) {
	c, err := ecs.NewCollider(size, size, solid, mass)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("spawn %s: %w", e.Sprite, err)
	}
	e.Collider = c
	return w.Spawn(e), nil
}

// hostileOwner returns the owner of other when it is on the opposite side
// from e.
func hostileOwner(w *ecs.World, e *ecs.Entity, other *ecs.Collider) (*ecs.Entity, bool) {
	o, ok := w.Entity(other.Owner)
	if !ok || o.IsFriendly == e.IsFriendly {
		return nil, false
	}
	return o, true
}

// muzzle returns the point dist units ahead of pos along angle.
func muzzle(pos geom.Vec2, angle, dist float64) geom.Vec2 {
	return pos.Add(geom.FromAngle(angle).Scale(dist))
}
