package sim

import (
	"log/slog"

	"astral-assault/internal/arena"
	"astral-assault/internal/clock"
	"astral-assault/internal/collision"
	"astral-assault/internal/config"
	"astral-assault/internal/ecs"
	"astral-assault/internal/event"
)

// Simulation wires the tick bus, entity world and collision system together
// and drives them one frame at a time. It is owned by a single goroutine.
type Simulation struct {
	Bus        *event.Bus
	World      *ecs.World
	Collisions *collision.System

	frames uint64
}

// New builds a Simulation from cfg. The collision system subscribes to the
// bus first, so each frame resolves contacts before entities integrate.
func New(cfg config.Config, clk clock.Clock, log *slog.Logger) *Simulation {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	bus := event.NewBus()
	w := ecs.NewWorld(bus, clk, ecs.Options{
		Arena:         arena.New(cfg.WorldWidth, cfg.WorldHeight),
		Invincibility: cfg.Physics.Invincibility,
		Logger:        log,
	})
	cs := collision.NewSystem(w, collision.Options{
		SpawnGrace:     cfg.Physics.SpawnGrace,
		ImpulseDamping: cfg.Physics.ImpulseDamping,
		Logger:         log,
	})
	w.SetColliders(cs)
	bus.Subscribe(cs.Tick)
	return &Simulation{Bus: bus, World: w, Collisions: cs}
}

// Step advances one frame: commit spawns queued since the last frame,
// publish the tick, then commit what the tick spawned or destroyed. New
// entities are attached before the next Step begins.
func (s *Simulation) Step(dt float64) {
	s.World.Commit()
	s.Bus.Publish(dt)
	s.World.Commit()
	s.frames++
}

// Frames returns the number of completed steps.
func (s *Simulation) Frames() uint64 { return s.frames }
