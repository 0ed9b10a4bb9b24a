package game

import (
	"fmt"
	"math"

	"astral-assault/internal/ecs"
	"astral-assault/internal/factory"
	"astral-assault/internal/geom"
	"astral-assault/internal/input"
	"astral-assault/internal/render"
	"astral-assault/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// asteroidPoints is the score for destroying one asteroid of each size.
var asteroidPoints = map[factory.AsteroidSize]int{
	factory.Smallest: 100,
	factory.Small:    50,
	factory.Medium:   20,
}

// spawnRing is the wave spawn distance from the arena centre, as a fraction
// of the shorter arena side.
const spawnRing = 0.4

// Gameplay is one run: a fresh simulation with the ship in the centre and
// waves of asteroids around it.
type Gameplay struct {
	g      *Game
	sim    *sim.Simulation
	player ecs.EntityID
	score  int
	wave   int
	over   bool
}

// NewGameplay returns a run state. The simulation is built on Enter.
func NewGameplay(g *Game) *Gameplay { return &Gameplay{g: g} }

func (s *Gameplay) Enter() {
	s.sim = sim.New(s.g.cfg, s.g.clock, s.g.log)
	s.score, s.wave, s.over = 0, 0, false

	w := s.sim.World
	id, err := factory.NewPlayer(w, w.Arena().Center(), s.g.input, func() { s.over = true })
	if err != nil {
		s.g.log.Error("spawn player", "err", err)
	}
	s.player = id
	s.nextWave()
}

func (s *Gameplay) Exit() {}

// Score returns the points earned so far.
func (s *Gameplay) Score() int { return s.score }

// Wave returns the current wave number, starting at 1.
func (s *Gameplay) Wave() int { return s.wave }

// Simulation exposes the run's simulation.
func (s *Gameplay) Simulation() *sim.Simulation { return s.sim }

// Update steps the simulation and moves to the game-over screen once the
// ship is destroyed. Clearing a wave starts the next, one asteroid larger.
func (s *Gameplay) Update(dt float64) {
	if s.g.input.Pressed(input.ActionQuit) {
		s.g.ChangeState(NewMenu(s.g))
		return
	}
	s.sim.Step(dt)
	if s.over {
		s.g.ChangeState(NewGameOver(s.g, s.score, s.wave))
		return
	}
	if s.rocks() == 0 {
		s.nextWave()
	}
}

func (s *Gameplay) nextWave() {
	s.wave++
	n := s.g.cfg.InitialAsteroids + s.wave - 1
	w := s.sim.World
	a := w.Arena()
	radius := min(a.Width, a.Height) * spawnRing
	for i := 0; i < n; i++ {
		pos := a.Center().Add(geom.FromAngle(s.g.rng.Float64() * 2 * math.Pi).Scale(radius))
		if _, err := factory.NewAsteroid(w, s.g.rng, pos, factory.Medium, s.asteroidKilled); err != nil {
			s.g.log.Error("spawn asteroid", "err", err)
		}
	}
	s.g.log.Debug("wave started", "wave", s.wave, "asteroids", n)
}

func (s *Gameplay) asteroidKilled(size factory.AsteroidSize) {
	s.score += asteroidPoints[size]
}

// rocks counts live and pending asteroids.
func (s *Gameplay) rocks() int {
	n := 0
	s.sim.World.Each(func(e *ecs.Entity) {
		if _, ok := e.Behavior.(*factory.Asteroid); ok {
			n++
		}
	})
	return n
}

func (s *Gameplay) Draw(tcell.Screen) {
	r := s.g.renderer
	r.DrawWorld(s.sim.World)
	hud := render.HUD{
		Score:     s.score,
		Rocks:     s.rocks(),
		Colliders: s.sim.Collisions.Len(),
		Contacts:  s.sim.Collisions.Overlapping(),
		Frame:     s.sim.Frames(),
		Message:   fmt.Sprintf("WAVE %d", s.wave),
	}
	if p, ok := s.sim.World.Entity(s.player); ok {
		hud.HP, hud.MaxHP = p.HP, p.MaxHP
	}
	r.DrawHUD(hud)
}
