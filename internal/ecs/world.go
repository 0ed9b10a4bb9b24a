package ecs

import (
	"log/slog"
	"time"

	"astral-assault/internal/arena"
	"astral-assault/internal/clock"
	"astral-assault/internal/event"
)

// Options tunes entity lifecycle rules.
type Options struct {
	Arena         arena.Arena
	Invincibility time.Duration // post-spawn window without contact damage
	Logger        *slog.Logger
}

// World is the central entity store. It owns every entity, subscribes them
// to the tick bus, and registers their colliders.
//
// Spawns are two-phase: Spawn stamps and stores the entity, Commit attaches
// it to the bus and collision registry. Destroy takes effect immediately and
// is idempotent.
type World struct {
	bus       *event.Bus
	clock     clock.Clock
	colliders ColliderRegistry
	opts      Options
	log       *slog.Logger

	nextID   EntityID
	entities map[EntityID]*Entity
	order    []*Entity // spawn order, compacted on Commit
	pending  []*Entity
}

// NewWorld creates an empty World publishing entity ticks on bus.
func NewWorld(bus *event.Bus, clk clock.Clock, opts Options) *World {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &World{
		bus:      bus,
		clock:    clk,
		opts:     opts,
		log:      log,
		nextID:   1,
		entities: make(map[EntityID]*Entity),
	}
}

// SetColliders connects the collision registry. Colliders of entities
// committed before this call are not registered retroactively.
func (w *World) SetColliders(r ColliderRegistry) { w.colliders = r }

// Arena returns the playfield bounds.
func (w *World) Arena() arena.Arena { return w.opts.Arena }

// Now returns the world clock's current time.
func (w *World) Now() time.Time { return w.clock.Now() }

// Logger returns the world's logger.
func (w *World) Logger() *slog.Logger { return w.log }

// Spawn assigns an ID and spawn timestamp to e and queues it for the next
// Commit. The entity does not tick or collide until then.
func (w *World) Spawn(e *Entity) EntityID {
	e.ID = w.nextID
	w.nextID++
	e.spawned = w.clock.Now()
	e.state = statePending
	e.died = false
	if e.Behavior == nil {
		e.Behavior = NopBehavior{}
	}
	e.clampHP()
	if e.Collider != nil {
		e.Collider.Owner = e.ID
		e.SyncCollider()
	}
	w.entities[e.ID] = e
	w.order = append(w.order, e)
	w.pending = append(w.pending, e)
	return e.ID
}

// Commit attaches pending entities and drops destroyed ones from the
// iteration order. It must not run while the bus is publishing.
func (w *World) Commit() {
	pending := w.pending
	w.pending = nil
	for _, e := range pending {
		if e.state != statePending {
			continue
		}
		e.state = stateAlive
		e.sub = w.bus.Subscribe(func(dt float64) { w.tick(e, dt) })
		if e.Collider != nil && w.colliders != nil {
			w.colliders.AddCollider(e.Collider)
		}
	}

	kept := w.order[:0]
	for _, e := range w.order {
		if e.state != stateDead {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = nil
	}
	w.order = kept
}

// Destroy unsubscribes the entity from the bus and deregisters its collider.
// Destroying an unknown or already destroyed entity is a no-op.
func (w *World) Destroy(id EntityID) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	delete(w.entities, id)
	e.state = stateDead
	w.bus.Unsubscribe(e.sub)
	if e.Collider != nil && w.colliders != nil {
		w.colliders.RemoveCollider(e.Collider)
	}
}

// Entity looks up a live or pending entity.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Alive reports whether id names a live or pending entity.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Len returns the number of live and pending entities.
func (w *World) Len() int { return len(w.entities) }

// Each calls fn for every live or pending entity in spawn order.
func (w *World) Each(fn func(e *Entity)) {
	for _, e := range w.order {
		if e.state != stateDead {
			fn(e)
		}
	}
}

// tick is the per-entity bus listener.
func (w *World) tick(e *Entity, dt float64) {
	if e.state != stateAlive {
		return
	}
	if e.IsActor && e.HP <= 0 {
		w.die(e)
		return
	}

	e.Position = e.Position.Add(e.Velocity.Scale(dt))
	e.SyncCollider()

	switch e.Bounds {
	case BoundsDestroy:
		if !w.opts.Arena.InBounds(e.Position) {
			w.Destroy(e.ID)
			return
		}
	case BoundsWrap:
		e.Position = w.opts.Arena.Wrap(e.Position)
	}

	e.Behavior.Tick(w, e, dt)
}

// die runs the death hook once, then destroys the entity whatever the hook did.
func (w *World) die(e *Entity) {
	if e.died {
		return
	}
	e.died = true
	e.HP = 0
	e.Behavior.Death(w, e)
	w.Destroy(e.ID)
}

// Contact applies contact damage from other's owner to the entity behind id.
// Damage needs an actor target, opposing factions, and an expired
// invincibility window. It reapplies on every call.
func (w *World) Contact(id EntityID, other *Collider) {
	e, ok := w.entities[id]
	if !ok || !e.IsActor {
		return
	}
	if e.Collider == nil {
		defect(w.log, "collision contact on actor without collider", "entity", id)
		return
	}
	src, ok := w.entities[other.Owner]
	if !ok || src.IsFriendly == e.IsFriendly {
		return
	}
	if w.clock.Now().Sub(e.spawned) <= w.opts.Invincibility {
		return
	}
	e.HP = max(0, e.HP-src.ContactDamage)
}

// CollisionEnter forwards an overlap-start edge to the entity's behavior.
func (w *World) CollisionEnter(id EntityID, other *Collider) {
	if e, ok := w.collisionTarget(id); ok {
		e.Behavior.CollisionEnter(w, e, other)
	}
}

// CollisionExit forwards an overlap-end edge to the entity's behavior.
func (w *World) CollisionExit(id EntityID, other *Collider) {
	if e, ok := w.collisionTarget(id); ok {
		e.Behavior.CollisionExit(w, e, other)
	}
}

func (w *World) collisionTarget(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	if !ok || e.state != stateAlive {
		return nil, false
	}
	if e.IsActor && e.Collider == nil {
		defect(w.log, "collision callback on actor without collider", "entity", id)
		return nil, false
	}
	return e, true
}
