package spatial

import "github.com/pkg/errors"

// Plane is an infinite plane through Origin, perpendicular to the unit
// vector Normal.
type Plane struct {
	Origin Point3
	Normal Vec3
}

// NewPlane returns the plane through origin with the given normal. The normal
// is normalized; a zero normal produces a NaN plane.
func NewPlane(origin Point3, normal Vec3) Plane {
	return Plane{Origin: origin, Normal: normal.Normalize()}
}

// NewPlaneFromPoints returns the plane through a, b, and c. The normal
// follows the right-hand rule for the order a, b, c. It fails with
// [ErrInvalidArgument] if the points are collinear.
func NewPlaneFromPoints(a, b, c Point3) (Plane, error) {
	n := a.VectorTo(b).Cross(a.VectorTo(c))
	if n.Hypot2() == 0 {
		return Plane{}, errors.Wrapf(ErrInvalidArgument, "points %s, %s, %s are collinear", a, b, c)
	}
	return NewPlane(a, n), nil
}

// SignedDistance returns the distance from the plane to pt, positive on the
// side the normal points to.
func (p Plane) SignedDistance(pt Point3) float64 {
	return p.Normal.Dot(pt.Sub(p.Origin))
}

// Project returns the orthogonal projection of pt onto the plane.
func (p Plane) Project(pt Point3) Point3 {
	return pt.Translate(p.Normal.Mul(-p.SignedDistance(pt)))
}

// Contains reports whether pt lies within tolerance of the plane.
func (p Plane) Contains(pt Point3, tolerance float64) bool {
	d := p.SignedDistance(pt)
	return d >= -tolerance && d <= tolerance
}
