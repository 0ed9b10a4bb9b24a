package factory

import (
	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"
)

const (
	bulletSpeed  = 240
	bulletDamage = 6
	bulletSize   = 2
)

// Bullet is a non-solid trigger. It damages the first hostile it enters
// and then removes itself. Bullets leaving the arena are destroyed.
type Bullet struct {
	ecs.NopBehavior
}

// NewBullet spawns a bullet at pos travelling along angle, inheriting
// carrier velocity.
func NewBullet(w *ecs.World, pos, carrier geom.Vec2, angle float64, friendly bool) (ecs.EntityID, error) {
	e := &ecs.Entity{
		Position:      pos,
		Velocity:      carrier.Add(geom.FromAngle(angle).Scale(bulletSpeed)),
		Rotation:      angle,
		ContactDamage: bulletDamage,
		IsFriendly:    friendly,
		Bounds:        ecs.BoundsDestroy,
		Sprite:        SpriteBullet,
		Behavior:      Bullet{},
	}
	return spawnWithCollider(w, e, bulletSize, false, 0)
}

// CollisionEnter destroys the bullet when it reaches a hostile.
func (Bullet) CollisionEnter(w *ecs.World, e *ecs.Entity, other *ecs.Collider) {
	if _, ok := hostileOwner(w, e, other); ok {
		w.Destroy(e.ID)
	}
}
