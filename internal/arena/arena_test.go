package arena

import (
	"testing"

	"astral-assault/internal/geom"
)

func TestInBounds(t *testing.T) {
	a := New(800, 600)
	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{800, 600, true},
		{400, 300, true},
		{-0.1, 0, false},
		{800.1, 0, false},
		{0, 600.5, false},
		{0, -1, false},
	}
	for _, c := range cases {
		got := a.InBounds(geom.V(c.x, c.y))
		if got != c.want {
			t.Errorf("InBounds(%v,%v)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	a := New(800, 600)
	cases := []struct {
		in, want geom.Vec2
	}{
		{geom.V(-5, 100), geom.V(800, 100)},
		{geom.V(850, 100), geom.V(0, 100)},
		{geom.V(100, -5), geom.V(100, 600)},
		{geom.V(100, 650), geom.V(100, 0)},
		{geom.V(800, 600), geom.V(800, 600)},
		{geom.V(-1, 601), geom.V(800, 0)},
	}
	for _, c := range cases {
		if got := a.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v)=%v, want %v", c.in, got, c.want)
		}
	}
}
