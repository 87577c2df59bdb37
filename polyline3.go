package spatial

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// PolyLine3 is the 3D counterpart of [PolyLine]: an immutable, ordered
// sequence of points in space interpreted as connected line segments.
type PolyLine3 struct {
	pts chain[Point3]
}

// NewPolyLine3 returns a polyline through pts. It fails with
// [ErrInvalidArgument] if pts is empty.
func NewPolyLine3(pts ...Point3) (PolyLine3, error) {
	if len(pts) == 0 {
		return PolyLine3{}, errors.Wrap(ErrInvalidArgument, "polyline needs at least one point")
	}
	return PolyLine3{pts: slices.Clone(pts)}, nil
}

// Len returns the number of points.
func (pl PolyLine3) Len() int { return len(pl.pts) }

// At returns the i-th point.
func (pl PolyLine3) At(i int) Point3 { return pl.pts[i] }

// First and Last return the polyline's end points. They panic on the zero
// PolyLine3; use one returned by [NewPolyLine3].
func (pl PolyLine3) First() Point3 { return pl.pts[0] }
func (pl PolyLine3) Last() Point3  { return pl.pts[len(pl.pts)-1] }

// Points returns a copy of the points.
func (pl PolyLine3) Points() []Point3 { return slices.Clone(pl.pts) }

// All returns an iterator over the indices and points.
func (pl PolyLine3) All() iter.Seq2[int, Point3] { return pl.pts.all() }

// Length returns the sum of the lengths of all segments. It is zero for
// polylines with fewer than two points.
func (pl PolyLine3) Length() float64 { return pl.pts.length() }

// Segments returns an iterator over the line segments between consecutive
// points.
func (pl PolyLine3) Segments() iter.Seq[Line3] {
	return func(yield func(Line3) bool) {
		for i := 0; i+1 < len(pl.pts); i++ {
			if !yield(Line3{pl.pts[i], pl.pts[i+1]}) {
				return
			}
		}
	}
}

// PointAtFraction is the 3D counterpart of [PolyLine.PointAtFraction].
func (pl PolyLine3) PointAtFraction(f float64) (Point3, error) {
	return pl.pts.pointAtFraction(f)
}

// PointAtLength is the 3D counterpart of [PolyLine.PointAtLength].
func (pl PolyLine3) PointAtLength(d float64) (Point3, error) {
	return pl.pts.pointAtLength(d)
}

// ClosestPointAndIndex is the 3D counterpart of
// [PolyLine.ClosestPointAndIndex].
func (pl PolyLine3) ClosestPointAndIndex(p Point3) (int, Point3, error) {
	return pl.pts.closest(p)
}

// ClosestPoint returns the point on the polyline closest to p.
func (pl PolyLine3) ClosestPoint(p Point3) (Point3, error) {
	_, pt, err := pl.pts.closest(p)
	return pt, err
}

// IntersectionsWith returns the points where the polyline's segments cross
// plane, in traversal order. Segments parallel to the plane, including
// segments lying in it, contribute nothing. A vertex lying on the plane is
// reported once for each of its segments that reaches it. See
// [Line3.IntersectPlane] for the meaning of tolerance.
func (pl PolyLine3) IntersectionsWith(plane Plane, tolerance float64) []Point3 {
	var out []Point3
	for seg := range pl.Segments() {
		if pt, ok := seg.IntersectPlane(plane, tolerance); ok {
			out = append(out, pt)
		}
	}
	return out
}

// IsPlanar would report whether all points lie in a common plane. It is not
// implemented and always fails with [ErrUnsupported].
func (pl PolyLine3) IsPlanar(tolerance float64) (bool, error) {
	return false, errors.Wrap(ErrUnsupported, "planarity test")
}

// Rotate rotates the polyline by th radians about an axis through the origin.
func (pl PolyLine3) Rotate(axis Vec3, th float64) PolyLine3 {
	return PolyLine3{pl.pts.mapPoints(func(pt Point3) Point3 { return pt.Rotate(axis, th) })}
}

// RotateAbout rotates the polyline by th radians about the line described by
// ray.
func (pl PolyLine3) RotateAbout(ray Ray3, th float64) PolyLine3 {
	return PolyLine3{pl.pts.mapPoints(func(pt Point3) Point3 { return pt.RotateAbout(ray, th) })}
}

// Translate moves every point by v.
func (pl PolyLine3) Translate(v Vec3) PolyLine3 {
	return PolyLine3{pl.pts.mapPoints(func(pt Point3) Point3 { return pt.Translate(v) })}
}
