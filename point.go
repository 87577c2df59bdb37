package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point is a point in 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Rotate rotates the point about the origin by th radians.
//
// See [Rotate] for the direction of rotation.
func (pt Point) Rotate(th float64) Point {
	return pt.Transform(Rotate(th))
}

// RotateAbout rotates the point about center by th radians.
func (pt Point) RotateAbout(center Point, th float64) Point {
	return pt.Transform(RotateAbout(th, center))
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// VectorTo returns the vector pointing from pt to o.
func (pt Point) VectorTo(o Point) Vec2 {
	return o.Sub(pt)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// ApproxEqual reports whether each coordinate of pt is within tolerance of
// the corresponding coordinate of o.
func (pt Point) ApproxEqual(o Point, tolerance float64) bool {
	return scalar.EqualWithinAbs(pt.X, o.X, tolerance) &&
		scalar.EqualWithinAbs(pt.Y, o.Y, tolerance)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func (pt Point) nearestOnSegment(p0, p1 Point) Point {
	return Line{p0, p1}.ClosestPoint(pt, true)
}
