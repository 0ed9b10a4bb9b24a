package geom

// Rect is an integer axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y int
	W, H int
}

// Centered returns a w×h rectangle centred on c.
func Centered(c Point, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the rectangle's centre.
func (r Rect) Center() Vec2 {
	return Vec2{float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2}
}

// MoveTo recentres r on c, keeping its size.
func (r Rect) MoveTo(c Point) Rect {
	return Centered(c, r.W, r.H)
}

// Intersects reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the penetration depth on each axis. Both are positive only
// when the rectangles intersect.
func (r Rect) Overlap(o Rect) (dx, dy int) {
	dx = min(r.Right(), o.Right()) - max(r.X, o.X)
	dy = min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	return dx, dy
}
