package spatial

import (
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Polygon is a closed polygon, described by its vertices in order. The last
// vertex connects back to the first; the closing vertex is not repeated.
//
// Polygons are immutable and may be used by multiple goroutines concurrently.
// The winding direction is whatever the vertices were given in.
type Polygon struct {
	pts []Point
}

// NewPolygon returns a polygon with the given vertices. pts may describe
// either an open or an explicitly closed ring: if the first and last points
// are equal, the first one is dropped so that every vertex appears once.
//
// It fails with [ErrInvalidArgument] if fewer than three vertices remain.
func NewPolygon(pts ...Point) (Polygon, error) {
	pts = slices.Clone(pts)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[1:]
	}
	if len(pts) < 3 {
		return Polygon{}, errors.Wrapf(ErrInvalidArgument, "polygon needs at least 3 distinct vertices, have %d", len(pts))
	}
	return Polygon{pts: pts}, nil
}

// Len returns the number of vertices.
func (poly Polygon) Len() int { return len(poly.pts) }

// At returns the i-th vertex.
func (poly Polygon) At(i int) Point { return poly.pts[i] }

// Points returns a copy of the vertices.
func (poly Polygon) Points() []Point { return slices.Clone(poly.pts) }

// All returns an iterator over the indices and vertices.
func (poly Polygon) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range poly.pts {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Edges returns an iterator over the polygon's edges, including the edge
// from the last vertex back to the first.
func (poly Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := len(poly.pts)
		for i := range n {
			if !yield(Line{poly.pts[i], poly.pts[(i+1)%n]}) {
				return
			}
		}
	}
}

// SignedArea returns the area of the polygon, computed with the shoelace
// formula. It is positive for anti-clockwise vertices in a y-up frame and
// negative for clockwise ones.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for edge := range poly.Edges() {
		area += edge.SignedArea()
	}
	return area
}

// Area returns the absolute area of the polygon.
func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// IsClockwise reports whether the vertices run clockwise in a y-up frame.
func (poly Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

// Perimeter returns the length of the polygon's boundary.
func (poly Polygon) Perimeter() float64 {
	var l float64
	for edge := range poly.Edges() {
		l += edge.Length()
	}
	return l
}

func (poly Polygon) BoundingBox() Rect {
	return boundingBox(poly.pts)
}

// Reverse returns the polygon with its winding direction flipped.
func (poly Polygon) Reverse() Polygon {
	pts := slices.Clone(poly.pts)
	slices.Reverse(pts)
	return Polygon{pts}
}

// Transform applies an affine transformation to every vertex.
func (poly Polygon) Transform(aff Affine) Polygon {
	return Polygon{slices.Collect(Transform(slices.Values(poly.pts), aff))}
}

// Translate moves every vertex by v.
func (poly Polygon) Translate(v Vec2) Polygon {
	return poly.Transform(Translate(v))
}

// Contains reports whether pt lies inside the polygon. See
// [IsPointInPolygon].
func (poly Polygon) Contains(pt Point) bool {
	return IsPointInPolygon(pt, poly)
}

// ConvexHull returns the convex hull of the polygon's vertices. See
// [ConvexHull].
func (poly Polygon) ConvexHull() (Polygon, error) {
	return ConvexHull(poly.pts)
}

func (poly Polygon) String() string {
	var sb strings.Builder
	sb.WriteString("Polygon[")
	for i, pt := range poly.pts {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// IsPointInPolygon reports whether pt lies inside poly, using the even-odd
// rule: a horizontal ray cast from pt toward positive x crosses the boundary
// an odd number of times iff pt is inside.
//
// The result for points exactly on an edge or vertex is unspecified. The
// winding direction of poly doesn't matter.
func IsPointInPolygon(pt Point, poly Polygon) bool {
	// https://wrfranklin.org/Research/Short_Notes/pnpoly.html
	inside := false
	pts := poly.pts
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
