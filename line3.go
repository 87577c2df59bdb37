package spatial

import "math"

// Line3 represents a line segment in 3D space.
type Line3 struct {
	P0 Point3
	P1 Point3
}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

// ClosestPoint returns the point on the line closest to pt. If clamp is
// true, the result is restricted to the segment between P0 and P1; otherwise
// the line is treated as infinite.
//
// A zero-length line maps every point to P0.
func (l Line3) ClosestPoint(pt Point3, clamp bool) Point3 {
	d := l.P1.Sub(l.P0)
	dSquared := d.Dot(d)
	if dSquared == 0 {
		return l.P0
	}
	t := d.Dot(pt.Sub(l.P0)) / dSquared
	if clamp {
		t = min(max(t, 0), 1)
	}
	return l.Eval(t)
}

// IntersectPlane returns the point where the segment crosses plane.
//
// There is no intersection when the segment is parallel to the plane (this
// includes segments lying in the plane), which is decided by comparing the
// cosine between the segment and the plane's surface normal against
// tolerance. The crossing must lie on the segment, with tolerance as slack
// in distance units at either end; crossings within the slack are clamped to
// the nearest endpoint.
func (l Line3) IntersectPlane(plane Plane, tolerance float64) (Point3, bool) {
	d := l.P1.Sub(l.P0)
	length := d.Hypot()
	if length == 0 {
		return Point3{}, false
	}
	u := d.Mul(1 / length)
	cos := plane.Normal.Dot(u)
	if math.Abs(cos) <= tolerance {
		return Point3{}, false
	}
	s := -plane.SignedDistance(l.P0) / cos
	if s < -tolerance || s > length+tolerance {
		return Point3{}, false
	}
	s = min(max(s, 0), length)
	return l.P0.Translate(u.Mul(s)), true
}
