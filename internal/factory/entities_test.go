package factory

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"astral-assault/internal/clock"
	"astral-assault/internal/config"
	"astral-assault/internal/ecs"
	"astral-assault/internal/geom"
	"astral-assault/internal/input"
	"astral-assault/internal/sim"
)

func newTestSim() (*sim.Simulation, *clock.Manual) {
	clk := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cfg := config.Default()
	cfg.WorldWidth, cfg.WorldHeight = 800, 600
	return sim.New(cfg, clk, nil), clk
}

// stubControls reports a fixed set of held actions.
type stubControls map[input.Action]bool

func (s stubControls) Held(a input.Action) bool    { return s[a] }
func (s stubControls) Pressed(a input.Action) bool { return s[a] }

func countSprite(w *ecs.World, sprite string) int {
	n := 0
	w.Each(func(e *ecs.Entity) {
		if e.Sprite == sprite {
			n++
		}
	})
	return n
}

func TestNewAsteroidRejectsInvalidSize(t *testing.T) {
	s, _ := newTestSim()
	rng := rand.New(rand.NewSource(1))
	for _, size := range []AsteroidSize{-1, Medium + 1} {
		id, err := NewAsteroid(s.World, rng, geom.V(10, 10), size, nil)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
		if id != ecs.NilEntity {
			t.Fatalf("size %d: expected nil entity, got %v", size, id)
		}
	}
	if s.World.Len() != 0 {
		t.Fatalf("invalid size spawned %d entities", s.World.Len())
	}
}

func TestAsteroidStats(t *testing.T) {
	s, _ := newTestSim()
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		size          AsteroidSize
		hp, dmg, mass float64
		collider      int
		sprite        string
	}{
		{Smallest, 12, 5, 6, 10, SpriteAsteroid1},
		{Small, 24, 7, 12, 16, SpriteAsteroid2},
		{Medium, 36, 12, 18, 24, SpriteAsteroid3},
	}
	for _, c := range cases {
		id, err := NewAsteroid(s.World, rng, geom.V(100, 100), c.size, nil)
		if err != nil {
			t.Fatalf("NewAsteroid(%v): %v", c.size, err)
		}
		e, _ := s.World.Entity(id)
		if e.MaxHP != c.hp || e.HP != c.hp || e.ContactDamage != c.dmg {
			t.Errorf("%v: hp=%v/%v dmg=%v", c.size, e.HP, e.MaxHP, e.ContactDamage)
		}
		if e.Collider.Mass != c.mass || e.Collider.Shape.W != c.collider || !e.Collider.Solid {
			t.Errorf("%v: collider %+v", c.size, e.Collider)
		}
		if e.Sprite != c.sprite || !e.IsActor || e.IsFriendly || e.Bounds != ecs.BoundsWrap {
			t.Errorf("%v: unexpected entity flags %+v", c.size, e)
		}
		if math.Abs(e.Velocity.X) > 100 || math.Abs(e.Velocity.Y) > 100 {
			t.Errorf("%v: velocity out of range %v", c.size, e.Velocity)
		}
	}
}

func TestAsteroidSplitsIntoLowerTier(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s, clk := newTestSim()
		rng := rand.New(rand.NewSource(seed))
		kills := 0
		id, err := NewAsteroid(s.World, rng, geom.V(400, 300), Medium, func(AsteroidSize) { kills++ })
		if err != nil {
			t.Fatal(err)
		}
		s.Step(0.016)
		clk.Advance(time.Second)

		e, _ := s.World.Entity(id)
		e.HP = 0
		s.Step(0.016)

		if s.World.Alive(id) {
			t.Fatalf("seed %d: medium asteroid survived death", seed)
		}
		n := countSprite(s.World, SpriteAsteroid2)
		if n < 1 || n > 3 {
			t.Fatalf("seed %d: expected 1-3 fragments, got %d", seed, n)
		}
		if kills != 1 {
			t.Fatalf("seed %d: killed callback ran %d times", seed, kills)
		}
		s.World.Each(func(f *ecs.Entity) {
			if !f.Spawned().Equal(clk.Now()) {
				t.Fatalf("seed %d: fragment spawn time %v, want %v", seed, f.Spawned(), clk.Now())
			}
			if !s.Collisions.Registered(f.Collider) || !f.Ticking() {
				t.Fatalf("seed %d: fragment not attached before next tick", seed)
			}
		})
	}
}

func TestSmallestAsteroidLeavesNothing(t *testing.T) {
	s, _ := newTestSim()
	rng := rand.New(rand.NewSource(3))
	id, _ := NewAsteroid(s.World, rng, geom.V(400, 300), Smallest, nil)
	s.Step(0.016)
	e, _ := s.World.Entity(id)
	e.HP = 0
	s.Step(0.016)
	if s.World.Len() != 0 {
		t.Fatalf("smallest asteroid left %d entities", s.World.Len())
	}
}

func TestAsteroidRotationWraps(t *testing.T) {
	a := &Asteroid{spin: 2}
	e := &ecs.Entity{Rotation: math.Pi - 0.01}
	a.Tick(nil, e, 0.1)
	if e.Rotation != -math.Pi {
		t.Fatalf("rotation past π should wrap to -π, got %v", e.Rotation)
	}
}

func TestBulletDestroyedOnHostileOnly(t *testing.T) {
	s, _ := newTestSim()
	rng := rand.New(rand.NewSource(5))
	// Friendly bullet starting on top of another friendly bullet, then a rock.
	b1, _ := NewBullet(s.World, geom.V(400, 300), geom.Vec2{}, 0, true)
	b2, _ := NewBullet(s.World, geom.V(400, 300), geom.Vec2{}, 0, true)
	s.Step(0)
	if !s.World.Alive(b1) || !s.World.Alive(b2) {
		t.Fatal("friendly bullets destroyed each other")
	}

	rock, _ := NewAsteroid(s.World, rng, geom.V(400, 300), Medium, nil)
	re, _ := s.World.Entity(rock)
	re.Velocity = geom.Vec2{}
	s.Step(0)
	if s.World.Alive(b1) || s.World.Alive(b2) {
		t.Fatal("bullets should be destroyed on entering a hostile")
	}
}

func TestBulletLeavingArenaIsDestroyed(t *testing.T) {
	s, _ := newTestSim()
	id, _ := NewBullet(s.World, geom.V(799, 300), geom.Vec2{}, 0, true)
	s.Step(0.016)
	s.Step(0.016)
	if s.World.Alive(id) {
		t.Fatal("bullet past the right edge should be destroyed")
	}
}

func TestPlayerThrustAndFire(t *testing.T) {
	s, _ := newTestSim()
	controls := stubControls{input.ActionThrust: true, input.ActionFire: true}
	id, err := NewPlayer(s.World, geom.V(400, 300), controls, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(0.1)
	s.Step(0.1)

	p, _ := s.World.Entity(id)
	if p.Velocity.Y >= 0 {
		t.Fatalf("thrusting up should give negative y velocity, got %v", p.Velocity)
	}
	if n := countSprite(s.World, SpriteBullet); n != 1 {
		t.Fatalf("expected 1 bullet inside the cooldown, got %d", n)
	}
	if !p.IsFriendly || !p.IsActor {
		t.Fatal("player must be a friendly actor")
	}
}

func TestPlayerDeathCallback(t *testing.T) {
	s, _ := newTestSim()
	died := 0
	id, _ := NewPlayer(s.World, geom.V(400, 300), stubControls{}, func() { died++ })
	s.Step(0.016)
	p, _ := s.World.Entity(id)
	p.HP = 0
	s.Step(0.016)
	s.Step(0.016)
	if died != 1 || s.World.Alive(id) {
		t.Fatalf("expected a single death, got %d (alive=%v)", died, s.World.Alive(id))
	}
}
