package spatial

import (
	"math"
	"slices"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(1, 1))), Pt(-1, -2), epsilon)
}

func TestAffineComposition(t *testing.T) {
	const epsilon = 1e-9

	// ThenX applies X after the receiver.
	assertNear(t, Pt(0, 0).Transform(Translate(Vec(1, 0)).ThenRotate(math.Pi/2)), Pt(0, 1), epsilon)
	assertNear(t, Pt(1, 0).Transform(Rotate(math.Pi/2).ThenTranslate(Vec(1, 0))), Pt(1, 1), epsilon)

	// a.Mul(b) applies b first.
	assertNear(t, Pt(1, 1).Transform(Translate(Vec(1, 2)).Mul(Scale(2, 2))), Pt(3, 4), epsilon)
	assertNear(t, Pt(1, 1).Transform(Scale(2, 2).Mul(Translate(Vec(1, 2)))), Pt(4, 6), epsilon)

	// The center of a rotation stays in place.
	for _, th := range []float64{0.7, -2, math.Pi} {
		assertNear(t, Pt(-3, 5).Transform(RotateAbout(th, Pt(-3, 5))), Pt(-3, 5), epsilon)
	}
}

func TestAffineTransformSeq(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	got := slices.Collect(Transform(slices.Values(pts), Translate(Vec(2, 3))))
	diff(t, got, []Point{Pt(2, 3), Pt(3, 3), Pt(3, 4)})
}
