package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point3 is a point in 3D space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point3) Translate(v Vec3) Point3 {
	return Point3(Vec3(pt).Add(v))
}

// Sub computes pt−o.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3(pt).Sub(Vec3(o))
}

// VectorTo returns the vector pointing from pt to o.
func (pt Point3) VectorTo(o Point3) Vec3 {
	return o.Sub(pt)
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// ApproxEqual reports whether each coordinate of pt is within tolerance of
// the corresponding coordinate of o.
func (pt Point3) ApproxEqual(o Point3, tolerance float64) bool {
	return scalar.EqualWithinAbs(pt.X, o.X, tolerance) &&
		scalar.EqualWithinAbs(pt.Y, o.Y, tolerance) &&
		scalar.EqualWithinAbs(pt.Z, o.Z, tolerance)
}

// Rotate rotates the point by th radians about an axis through the origin.
func (pt Point3) Rotate(axis Vec3, th float64) Point3 {
	return Point3(Vec3(pt).Rotate(axis, th))
}

// RotateAbout rotates the point by th radians about the line through
// ray.Origin in the direction of ray.Direction.
func (pt Point3) RotateAbout(ray Ray3, th float64) Point3 {
	rel := pt.Sub(ray.Origin).Rotate(ray.Direction, th)
	return ray.Origin.Translate(rel)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

func (pt Point3) nearestOnSegment(p0, p1 Point3) Point3 {
	return Line3{p0, p1}.ClosestPoint(pt, true)
}
