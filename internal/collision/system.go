package collision

import (
	"log/slog"
	"time"

	"astral-assault/internal/ecs"
)

// Options tunes solid-body response.
type Options struct {
	// SpawnGrace exempts young entities from solid correction so freshly
	// split bodies do not fly apart.
	SpawnGrace time.Duration
	// ImpulseDamping divides the per-second impulse before it reaches velocity.
	ImpulseDamping float64
	Logger         *slog.Logger
}

// pair is an unordered collider pair keyed in registration order.
type pair struct {
	a, b *ecs.Collider
}

// pairSet keeps insertion order so exit events fire deterministically.
type pairSet struct {
	order []pair
	index map[pair]struct{}
}

func newPairSet() *pairSet {
	return &pairSet{index: make(map[pair]struct{})}
}

func (s *pairSet) add(p pair) {
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = struct{}{}
	s.order = append(s.order, p)
}

func (s *pairSet) has(p pair) bool {
	_, ok := s.index[p]
	return ok
}

// System is the collider registry and per-tick pair pass.
type System struct {
	world *ecs.World
	opts  Options
	log   *slog.Logger

	colliders  []*ecs.Collider        // registration order
	registered map[*ecs.Collider]bool // membership, updated immediately
	added      []*ecs.Collider        // registered during a pass
	dirty      bool                   // colliders holds removed entries
	running    bool

	last *pairSet
}

// NewSystem creates an empty collision system resolving owners through world.
func NewSystem(world *ecs.World, opts Options) *System {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.ImpulseDamping <= 0 {
		opts.ImpulseDamping = 1
	}
	return &System{
		world:      world,
		opts:       opts,
		log:        log,
		registered: make(map[*ecs.Collider]bool),
		last:       newPairSet(),
	}
}

// AddCollider appends c to the registry. Adding a registered collider is a
// no-op. Colliders added during a pass join after it completes.
func (s *System) AddCollider(c *ecs.Collider) {
	if c == nil || s.registered[c] {
		return
	}
	s.registered[c] = true
	if s.running {
		s.added = append(s.added, c)
		return
	}
	s.colliders = append(s.colliders, c)
}

// RemoveCollider deregisters c. Removing an unregistered collider is a no-op.
// During a pass c is skipped from the moment it is removed.
func (s *System) RemoveCollider(c *ecs.Collider) {
	if !s.registered[c] {
		return
	}
	delete(s.registered, c)
	if s.running {
		s.dirty = true
		return
	}
	for i, rc := range s.colliders {
		if rc == c {
			s.colliders = append(s.colliders[:i], s.colliders[i+1:]...)
			break
		}
	}
}

// Registered reports whether c is currently in the registry.
func (s *System) Registered(c *ecs.Collider) bool { return s.registered[c] }

// Len returns the number of registered colliders.
func (s *System) Len() int { return len(s.registered) }

// Overlapping returns the number of pairs that overlapped on the last tick.
func (s *System) Overlapping() int { return len(s.last.order) }

// Tick runs one pairwise pass. It is the system's bus listener.
func (s *System) Tick(dt float64) {
	s.running = true
	current := newPairSet()
	ended := newPairSet()
	cs := s.colliders

	for i := 0; i < len(cs)-1; i++ {
		a := cs[i]
		for j := i + 1; j < len(cs); j++ {
			if !s.registered[a] {
				break
			}
			b := cs[j]
			if !s.registered[b] {
				continue
			}
			p := pair{a: a, b: b}

			ea, okA := s.world.Entity(a.Owner)
			eb, okB := s.world.Entity(b.Owner)
			if !okA || !okB {
				s.log.Warn("registered collider without live owner", "a", a.Owner, "b", b.Owner)
				continue
			}

			resp, overlapping := Resolve(
				Body{Shape: a.Shape, Velocity: ea.Velocity, Mass: a.Mass},
				Body{Shape: b.Shape, Velocity: eb.Velocity, Mass: b.Mass},
			)
			if !overlapping {
				if s.last.has(p) {
					ended.add(p)
					s.exit(p)
				}
				continue
			}

			if a.Solid && b.Solid && s.graceExpired(ea) && s.graceExpired(eb) {
				ea.Position = ea.Position.Add(resp.SeparationA)
				eb.Position = eb.Position.Add(resp.SeparationB)
				if dt > 0 {
					k := 1 / dt / s.opts.ImpulseDamping
					ea.Velocity = ea.Velocity.Add(resp.ImpulseA.Scale(k))
					eb.Velocity = eb.Velocity.Add(resp.ImpulseB.Scale(k))
				}
				ea.SyncCollider()
				eb.SyncCollider()
			}

			current.add(p)
			// Contact damage lands before enter hooks so a trigger that
			// destroys itself on enter still deals its damage.
			s.world.Contact(a.Owner, b)
			s.world.Contact(b.Owner, a)
			if !s.last.has(p) {
				s.world.CollisionEnter(a.Owner, b)
				s.world.CollisionEnter(b.Owner, a)
			}
		}
	}

	// Pairs that overlapped last tick but were never tested this pass.
	for _, p := range s.last.order {
		if !current.has(p) && !ended.has(p) {
			s.exit(p)
		}
	}

	// Pairs whose collider went away after being recorded this pass end now.
	next := newPairSet()
	for _, p := range current.order {
		if s.registered[p.a] && s.registered[p.b] {
			next.add(p)
			continue
		}
		s.exit(p)
	}
	s.last = next

	s.running = false
	s.flush()
}

func (s *System) exit(p pair) {
	s.world.CollisionExit(p.a.Owner, p.b)
	s.world.CollisionExit(p.b.Owner, p.a)
}

func (s *System) graceExpired(e *ecs.Entity) bool {
	return s.world.Now().Sub(e.Spawned()) > s.opts.SpawnGrace
}

// flush applies structural changes deferred during a pass.
func (s *System) flush() {
	if s.dirty {
		kept := s.colliders[:0]
		for _, c := range s.colliders {
			if s.registered[c] {
				kept = append(kept, c)
			}
		}
		for i := len(kept); i < len(s.colliders); i++ {
			s.colliders[i] = nil
		}
		s.colliders = kept
		s.dirty = false
	}
	if len(s.added) == 0 {
		return
	}
	present := make(map[*ecs.Collider]bool, len(s.colliders))
	for _, c := range s.colliders {
		present[c] = true
	}
	for _, c := range s.added {
		// A collider removed and re-added within one pass still holds its old slot.
		if s.registered[c] && !present[c] {
			s.colliders = append(s.colliders, c)
			present[c] = true
		}
	}
	s.added = nil
}
