package factory

import (
	"math"

	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"
	"astral-assault/internal/input"
)

// Ship handling, in world units and seconds.
const (
	playerHP       = 50
	playerDamage   = 10
	playerMass     = 20
	playerCollider = 10
	thrustAccel    = 120
	turnSpeed      = 3.5
	friction       = 40
	maxSpeed       = 160
	fireCooldown   = 0.2
	muzzleOffset   = 8
)

// Controls is the slice of the input source the ship reads.
type Controls interface {
	Held(a input.Action) bool
	Pressed(a input.Action) bool
}

// Player is the friendly ship. It turns and thrusts from Controls, drifts
// with friction, wraps around the arena and fires bullets.
type Player struct {
	ecs.NopBehavior
	controls Controls
	cooldown float64
	died     func()
}

// NewPlayer spawns the ship at pos facing up. died, when non-nil, runs from
// the death hook.
func NewPlayer(w *ecs.World, pos geom.Vec2, controls Controls, died func()) (ecs.EntityID, error) {
	e := &ecs.Entity{
		Position:      pos,
		Rotation:      -math.Pi / 2,
		MaxHP:         playerHP,
		HP:            playerHP,
		ContactDamage: playerDamage,
		IsActor:       true,
		IsFriendly:    true,
		Bounds:        ecs.BoundsWrap,
		Sprite:        SpritePlayer,
		Behavior:      &Player{controls: controls, died: died},
	}
	return spawnWithCollider(w, e, playerCollider, true, playerMass)
}

// Tick applies steering, friction and firing.
func (p *Player) Tick(w *ecs.World, e *ecs.Entity, dt float64) {
	if p.controls.Held(input.ActionTurnLeft) {
		e.Rotation -= turnSpeed * dt
	}
	if p.controls.Held(input.ActionTurnRight) {
		e.Rotation += turnSpeed * dt
	}
	e.Rotation = math.Remainder(e.Rotation, 2*math.Pi)

	forward := geom.FromAngle(e.Rotation)
	if p.controls.Held(input.ActionThrust) {
		e.Velocity = e.Velocity.Add(forward.Scale(thrustAccel * dt))
	}
	if p.controls.Held(input.ActionReverse) {
		e.Velocity = e.Velocity.Sub(forward.Scale(thrustAccel * dt))
	}

	if speed := e.Velocity.Len(); speed > 0 {
		slowed := math.Max(0, speed-friction*dt)
		e.Velocity = e.Velocity.Scale(math.Min(slowed, maxSpeed) / speed)
	}

	p.cooldown = math.Max(0, p.cooldown-dt)
	if p.cooldown == 0 && (p.controls.Pressed(input.ActionFire) || p.controls.Held(input.ActionFire)) {
		pos := muzzle(e.Position, e.Rotation, muzzleOffset)
		if _, err := NewBullet(w, pos, e.Velocity, e.Rotation, e.IsFriendly); err != nil {
			w.Logger().Error("fire bullet", "err", err)
		}
		p.cooldown = fireCooldown
	}
}

// Death reports the loss. The World removes the ship afterwards.
func (p *Player) Death(w *ecs.World, e *ecs.Entity) {
	w.Logger().Info("player destroyed", "entity", e.ID)
	if p.died != nil {
		p.died()
	}
}
