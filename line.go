package spatial

// Line represents a line segment between two points.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Side returns the signed cross product of the line's direction and the
// vector from P0 to pt. It is positive when pt lies to the left of the
// directed line (in a y-up frame), negative when it lies to the right, and
// zero when the three points are collinear. Its magnitude is twice the area
// of the triangle (P0, P1, pt), and thus proportional to pt's distance from
// the line.
func (l Line) Side(pt Point) float64 {
	return l.P1.Sub(l.P0).Cross(pt.Sub(l.P0))
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point on the
// line segment and that point's parameter t ∈ [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// ClosestPoint returns the point on the line closest to pt. If clamp is
// true, the result is restricted to the segment between P0 and P1; otherwise
// the line is treated as infinite.
//
// A zero-length line maps every point to P0.
func (l Line) ClosestPoint(pt Point, clamp bool) Point {
	if clamp {
		_, t := l.Nearest(pt)
		return l.Eval(t)
	}
	d := l.P1.Sub(l.P0)
	dSquared := d.Dot(d)
	if dSquared == 0 {
		return l.P0
	}
	return l.Eval(d.Dot(pt.Sub(l.P0)) / dSquared)
}

// SignedArea returns the signed area under the line, as used by the
// shoelace formula.
func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}
