package spatial

import (
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// PolyLine is an ordered sequence of 2D points, interpreted as the piecewise
// linear curve through them. The order of the points defines the direction of
// traversal; the curve is not closed.
//
// PolyLines are immutable. Operations that produce curves return new
// polylines that don't share storage with their input, so a PolyLine may be
// used by multiple goroutines concurrently.
//
// Consecutive duplicate points are allowed but produce zero-length segments.
// Use [PolyLine.RemoveAdjacentDuplicates] to get rid of them.
type PolyLine struct {
	pts chain[Point]
}

// NewPolyLine returns a polyline through pts. It fails with
// [ErrInvalidArgument] if pts is empty.
func NewPolyLine(pts ...Point) (PolyLine, error) {
	if len(pts) == 0 {
		return PolyLine{}, errors.Wrap(ErrInvalidArgument, "polyline needs at least one point")
	}
	return PolyLine{pts: slices.Clone(pts)}, nil
}

// Len returns the number of points.
func (pl PolyLine) Len() int { return len(pl.pts) }

// At returns the i-th point.
func (pl PolyLine) At(i int) Point { return pl.pts[i] }

// First and Last return the polyline's end points. They panic on the zero
// PolyLine; use one returned by [NewPolyLine].
func (pl PolyLine) First() Point { return pl.pts[0] }
func (pl PolyLine) Last() Point  { return pl.pts[len(pl.pts)-1] }

// Points returns a copy of the points.
func (pl PolyLine) Points() []Point { return slices.Clone(pl.pts) }

// All returns an iterator over the indices and points.
func (pl PolyLine) All() iter.Seq2[int, Point] { return pl.pts.all() }

// Segments returns an iterator over the line segments between consecutive
// points.
func (pl PolyLine) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(pl.pts); i++ {
			if !yield(Line{pl.pts[i], pl.pts[i+1]}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all points. It is the
// zero Rect for a polyline without points.
func (pl PolyLine) BoundingBox() Rect {
	if len(pl.pts) == 0 {
		return Rect{}
	}
	return boundingBox(pl.pts)
}

// Length returns the sum of the lengths of all segments. It is zero for
// polylines with fewer than two points.
func (pl PolyLine) Length() float64 {
	return pl.pts.length()
}

// PointAtFraction returns the point at fraction f ∈ [0, 1] of the length of
// the polyline. It fails with [ErrInvalidArgument] if f is outside that range
// and with [ErrInvalidState] if the polyline has fewer than two points.
func (pl PolyLine) PointAtFraction(f float64) (Point, error) {
	return pl.pts.pointAtFraction(f)
}

// PointAtLength returns the point d units along the polyline, measured from
// its first point. Unlike [PolyLine.PointAtFraction], out of range values are
// accepted: d ≤ 0 returns the first point and d ≥ Length returns the last.
//
// It fails with [ErrInvalidState] if the polyline has fewer than two points.
func (pl PolyLine) PointAtLength(d float64) (Point, error) {
	return pl.pts.pointAtLength(d)
}

// ClosestPointAndIndex returns the point on the polyline closest to p, and
// the index of the point preceding it, which is the index of the first
// endpoint of the segment containing it. If several segments are equally
// close, the one with the lowest index wins.
//
// It fails with [ErrInvalidState] if the polyline has fewer than two points.
func (pl PolyLine) ClosestPointAndIndex(p Point) (int, Point, error) {
	return pl.pts.closest(p)
}

// ClosestPoint returns the point on the polyline closest to p.
func (pl PolyLine) ClosestPoint(p Point) (Point, error) {
	_, pt, err := pl.pts.closest(p)
	return pt, err
}

// Transform applies an affine transformation to every point.
func (pl PolyLine) Transform(aff Affine) PolyLine {
	return PolyLine{slices.Collect(Transform(slices.Values(pl.pts), aff))}
}

// Rotate rotates the polyline about the origin by th radians.
func (pl PolyLine) Rotate(th float64) PolyLine {
	return pl.Transform(Rotate(th))
}

// RotateAbout rotates the polyline about center by th radians.
func (pl PolyLine) RotateAbout(center Point, th float64) PolyLine {
	return pl.Transform(RotateAbout(th, center))
}

// Translate moves every point by v.
func (pl PolyLine) Translate(v Vec2) PolyLine {
	return PolyLine{pl.pts.mapPoints(func(pt Point) Point { return pt.Translate(v) })}
}

// ConvexHull returns the convex hull of the polyline's points. See
// [ConvexHull].
func (pl PolyLine) ConvexHull() (Polygon, error) {
	return ConvexHull(pl.pts)
}

func (pl PolyLine) String() string {
	var sb strings.Builder
	sb.WriteString("PolyLine[")
	for i, pt := range pl.pts {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteString("]")
	return sb.String()
}
