package ecs

import (
	"math"
	"time"

	"astral-assault/internal/event"
	"astral-assault/internal/geom"
)

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value. No valid entity has this ID.
const NilEntity EntityID = 0

// OutOfBounds selects what happens when an entity leaves the arena.
type OutOfBounds uint8

const (
	BoundsNothing OutOfBounds = iota // keep going
	BoundsWrap                       // reappear on the opposite edge
	BoundsDestroy                    // remove the entity
)

// Behavior is the per-variant hook set. The World calls Tick after the
// shared motion step, CollisionEnter/Exit at overlap edges, and Death before
// it destroys an actor whose HP reached zero.
type Behavior interface {
	Tick(w *World, e *Entity, dt float64)
	CollisionEnter(w *World, e *Entity, other *Collider)
	CollisionExit(w *World, e *Entity, other *Collider)
	Death(w *World, e *Entity)
}

// NopBehavior implements every Behavior hook as a no-op. Variants embed it
// and override what they need.
type NopBehavior struct{}

func (NopBehavior) Tick(*World, *Entity, float64)             {}
func (NopBehavior) CollisionEnter(*World, *Entity, *Collider) {}
func (NopBehavior) CollisionExit(*World, *Entity, *Collider)  {}
func (NopBehavior) Death(*World, *Entity)                     {}

type lifeState uint8

const (
	statePending lifeState = iota // spawned, waiting for commit
	stateAlive
	stateDead
)

// Entity is the base simulation unit.
type Entity struct {
	ID       EntityID
	Position geom.Vec2
	Velocity geom.Vec2
	Rotation float64

	MaxHP         float64
	HP            float64
	ContactDamage float64
	IsActor       bool // takes contact damage and can die
	IsFriendly    bool

	Bounds   OutOfBounds
	Sprite   string // visual handle resolved by the renderer
	Collider *Collider
	Behavior Behavior

	spawned time.Time
	sub     event.Subscription
	state   lifeState
	died    bool
}

// Spawned returns the monotonic timestamp taken when the entity was spawned.
func (e *Entity) Spawned() time.Time { return e.spawned }

// Alive reports whether the entity is spawned and not yet destroyed.
func (e *Entity) Alive() bool { return e.state != stateDead }

// Ticking reports whether the entity currently receives ticks.
func (e *Entity) Ticking() bool { return e.sub.Active() }

// HealthFraction returns HP/MaxHP, or 0 when MaxHP is not positive.
func (e *Entity) HealthFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return e.HP / e.MaxHP
}

// SyncCollider moves the owned collider to the rounded entity position.
func (e *Entity) SyncCollider() {
	if e.Collider != nil {
		e.Collider.SetPosition(e.Position.Round())
	}
}

func (e *Entity) clampHP() {
	e.HP = math.Max(0, math.Min(e.HP, e.MaxHP))
}
