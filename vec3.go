package spatial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3D vector. Its arithmetic is delegated to gonum's r3 package.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3Of returns the vector ⟨x, y, z⟩.
func Vec3Of(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(o))
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(v), r3.Vec(o)))
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return r3.Norm(r3.Vec(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3) Hypot2() float64 {
	return r3.Norm2(r3.Vec(v))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(o)))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(o)))
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3(r3.Scale(f, r3.Vec(v)))
}

// Rotate rotates v by th radians about axis, following the right-hand rule.
// axis need not be normalized, but must not be the zero vector.
func (v Vec3) Rotate(axis Vec3, th float64) Vec3 {
	return Vec3(r3.Rotate(r3.Vec(v), th, r3.Vec(axis)))
}
