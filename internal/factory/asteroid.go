package factory

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"
)

// ErrInvalidSize is returned for an unknown asteroid size selector.
var ErrInvalidSize = errors.New("invalid asteroid size")

// AsteroidSize is the asteroid tier. Each death spawns the next lower tier.
type AsteroidSize int

const (
	Smallest AsteroidSize = iota
	Small
	Medium
)

func (s AsteroidSize) String() string {
	switch s {
	case Smallest:
		return "smallest"
	case Small:
		return "small"
	case Medium:
		return "medium"
	}
	return fmt.Sprintf("AsteroidSize(%d)", int(s))
}

type asteroidStats struct {
	sprite   string
	collider int
	hp       float64
	damage   float64
	mass     float64
}

func statsFor(size AsteroidSize) (asteroidStats, error) {
	switch size {
	case Smallest:
		return asteroidStats{SpriteAsteroid1, 10, 12, 5, 6}, nil
	case Small:
		return asteroidStats{SpriteAsteroid2, 16, 24, 7, 12}, nil
	case Medium:
		return asteroidStats{SpriteAsteroid3, 24, 36, 12, 18}, nil
	}
	return asteroidStats{}, fmt.Errorf("%w: %d", ErrInvalidSize, int(size))
}

// Asteroid is a hostile solid rock that spins, wraps around the arena and
// splits into 1-3 smaller rocks when destroyed.
type Asteroid struct {
	ecs.NopBehavior
	Size     AsteroidSize
	spin     float64 // rad/s
	exploded bool
	rng      *rand.Rand
	killed   func(AsteroidSize)
}

// NewAsteroid spawns an asteroid of the given size at pos with a random
// spin and drift. killed, when non-nil, is told about every asteroid death,
// including those of its fragments.
func NewAsteroid(w *ecs.World, rng *rand.Rand, pos geom.Vec2, size AsteroidSize, killed func(AsteroidSize)) (ecs.EntityID, error) {
	st, err := statsFor(size)
	if err != nil {
		return ecs.NilEntity, err
	}
	b := &Asteroid{
		Size:   size,
		spin:   float64(5+rng.Intn(15)) / 10,
		rng:    rng,
		killed: killed,
	}
	e := &ecs.Entity{
		Position:      pos,
		Velocity:      geom.V(float64(rng.Intn(200)-100), float64(rng.Intn(200)-100)),
		MaxHP:         st.hp,
		HP:            st.hp,
		ContactDamage: st.damage,
		IsActor:       true,
		Bounds:        ecs.BoundsWrap,
		Sprite:        st.sprite,
		Behavior:      b,
	}
	return spawnWithCollider(w, e, st.collider, true, st.mass)
}

// Tick spins the rock, keeping rotation in (-π, π].
func (a *Asteroid) Tick(_ *ecs.World, e *ecs.Entity, dt float64) {
	e.Rotation += a.spin * dt
	if e.Rotation > math.Pi {
		e.Rotation = -math.Pi
	}
}

// Death splits the rock once. The World destroys it right after.
func (a *Asteroid) Death(w *ecs.World, e *ecs.Entity) {
	if a.exploded {
		return
	}
	if a.Size > Smallest {
		n := 1 + a.rng.Intn(3)
		for i := 0; i < n; i++ {
			if _, err := NewAsteroid(w, a.rng, e.Position, a.Size-1, a.killed); err != nil {
				w.Logger().Error("split asteroid", "size", a.Size-1, "err", err)
			}
		}
		w.Logger().Debug("asteroid split", "entity", e.ID, "size", a.Size, "fragments", n)
	}
	a.exploded = true
	if a.killed != nil {
		a.killed(a.Size)
	}
}
