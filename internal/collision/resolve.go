package collision

import "astral-assault/internal/geom"

// Body is the physical view of one side of a pair.
type Body struct {
	Shape    geom.Rect
	Velocity geom.Vec2
	Mass     float64
}

// Response holds the corrections for an overlapping pair. Separation is a
// position change, Impulse a velocity change before damping. Both are split
// inversely to mass: the heavier body gets the smaller share, equal masses
// split evenly, and the two sides point in opposite directions.
type Response struct {
	Normal      geom.Vec2 // unit axis pointing from b towards a
	Depth       int       // penetration on Normal
	SeparationA geom.Vec2
	SeparationB geom.Vec2
	ImpulseA    geom.Vec2
	ImpulseB    geom.Vec2
}

// Resolve tests a and b for overlap and, when they overlap, computes the
// separation along the axis of least penetration and the response impulse
// along the same axis. The impulse magnitude is closingSpeed·m1m2/(m1+m2);
// a separating pair gets no impulse.
func Resolve(a, b Body) (Response, bool) {
	if !a.Shape.Intersects(b.Shape) {
		return Response{}, false
	}
	dx, dy := a.Shape.Overlap(b.Shape)

	diff := a.Shape.Center().Sub(b.Shape.Center())
	var r Response
	if dx <= dy {
		r.Normal = geom.V(sign(diff.X), 0)
		r.Depth = dx
	} else {
		r.Normal = geom.V(0, sign(diff.Y))
		r.Depth = dy
	}

	shareA, shareB := 0.5, 0.5
	if total := a.Mass + b.Mass; total > 0 {
		shareA = b.Mass / total
		shareB = a.Mass / total
	}

	sep := r.Normal.Scale(float64(r.Depth))
	r.SeparationA = sep.Scale(shareA)
	r.SeparationB = sep.Scale(-shareB)

	closing := -a.Velocity.Sub(b.Velocity).Dot(r.Normal)
	switch {
	case closing <= 0:
	case a.Mass > 0 && b.Mass > 0:
		j := closing * ReducedMass(a.Mass, b.Mass)
		r.ImpulseA = r.Normal.Scale(j / a.Mass)
		r.ImpulseB = r.Normal.Scale(-j / b.Mass)
	default:
		// A massless side has no reduced mass; split the closing speed by share.
		r.ImpulseA = r.Normal.Scale(closing * shareA)
		r.ImpulseB = r.Normal.Scale(-closing * shareB)
	}
	return r, true
}

// ReducedMass returns m1·m2/(m1+m2), or 0 when both masses are zero.
func ReducedMass(m1, m2 float64) float64 {
	if m1+m2 <= 0 {
		return 0
	}
	return m1 * m2 / (m1 + m2)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
