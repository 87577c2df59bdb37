package spatial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D vector. Its arithmetic is delegated to gonum's r2 package.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(o))
}

// Cross returns the cross product of v and o, which is the z component of
// the 3D cross product of the two vectors extended with z = 0.
//
// The result is positive when o points to the left of v in a y-up frame,
// negative when it points to the right, and zero when the two are collinear.
func (v Vec2) Cross(o Vec2) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(o))
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return r2.Norm(r2.Vec(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return r2.Norm2(r2.Vec(v))
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(o)))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(v), r2.Vec(o)))
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2(r2.Scale(f, r2.Vec(v)))
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
