package spatial

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

func TestConvexHull(t *testing.T) {
	tests := []struct {
		in      []Point
		want    []Point
		comment string
	}{
		{
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0.5, 0.5)},
			[]Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
			"square with interior point",
		},
		{
			[]Point{
				Pt(0, 0), Pt(0.5, 0), Pt(1, 0), Pt(1, 0.5), Pt(1, 1),
				Pt(0.5, 1), Pt(0, 1), Pt(0, 0.5), Pt(0.5, 0.5),
			},
			[]Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
			"points on edges are not corners",
		},
		{
			[]Point{Pt(0, 0), Pt(0, 0), Pt(2, 0), Pt(2, 0), Pt(1, 2), Pt(1, 2), Pt(1, 1)},
			[]Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)},
			"duplicates",
		},
		{
			[]Point{Pt(3, 1), Pt(-2, 5), Pt(7, 7)},
			[]Point{Pt(3, 1), Pt(-2, 5), Pt(7, 7)},
			"three points are returned as given",
		},
		{
			[]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4), Pt(2, 6), Pt(6, 2), Pt(2, -2), Pt(-2, 2)},
			[]Point{Pt(-2, 2), Pt(2, 6), Pt(6, 2), Pt(2, -2)},
			"square inside a diamond",
		},
	}
	for _, tt := range tests {
		got, err := ConvexHull(tt.in)
		if err != nil {
			t.Fatalf("%s: %s", tt.comment, err)
		}
		diff(t, got.Points(), tt.want)
	}
}

func TestConvexHullErrors(t *testing.T) {
	for _, pts := range [][]Point{
		nil,
		{Pt(0, 0)},
		{Pt(0, 0), Pt(1, 1)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	} {
		_, err := ConvexHull(pts)
		assertErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestConvexHullContainsInput(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for iter := range 50 {
		n := 4 + r.IntN(200)
		pts := make([]Point, n)
		for i := range pts {
			if iter%2 == 0 {
				pts[i] = Pt(r.NormFloat64(), r.NormFloat64())
			} else {
				// Points on a circle put most of the input on the hull.
				th := r.Float64() * 2 * math.Pi
				pts[i] = Pt(math.Cos(th), math.Sin(th))
			}
		}
		hull, err := ConvexHull(pts)
		if err != nil {
			t.Fatal(err)
		}
		checkHull(t, hull, pts)

		if want := referenceHullArea(t, pts); math.Abs(hull.Area()-want) > 1e-9 {
			t.Errorf("hull of %d points has area %v, want %v", n, hull.Area(), want)
		}
	}
}

// referenceHullArea computes the area of the convex hull of pts with go-geom.
func referenceHullArea(t *testing.T, pts []Point) float64 {
	t.Helper()
	flat := make([]float64, 0, 2*len(pts))
	for _, pt := range pts {
		flat = append(flat, pt.X, pt.Y)
	}
	poly, ok := xy.ConvexHullFlat(geom.XY, flat).(*geom.Polygon)
	if !ok {
		t.Fatalf("go-geom hull of %d points is not a polygon", len(pts))
	}
	return poly.Area()
}

func TestPolyLineConvexHull(t *testing.T) {
	pl := mustPolyLine(t, Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(1, -1), Pt(1, 0))
	hull, err := pl.ConvexHull()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, hull.Points(), []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(1, -1)})

	poly := mustPolygon(t, Pt(0, 0), Pt(1, 0.1), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	hull, err = poly.ConvexHull()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, hull.Points(), []Point{Pt(0, 0), Pt(0, 2), Pt(2, 2), Pt(2, 0)})
}

// checkHull verifies that hull is a clockwise convex polygon made of input
// points, without collinear runs, that contains every input point.
func checkHull(t *testing.T, hull Polygon, pts []Point) {
	t.Helper()
	const eps = 1e-12

	inputs := make(map[Point]bool, len(pts))
	for _, pt := range pts {
		inputs[pt] = true
	}
	n := hull.Len()
	if n > len(pts) {
		t.Fatalf("hull has %d vertices for %d points", n, len(pts))
	}
	for i, v := range hull.All() {
		if !inputs[v] {
			t.Fatalf("hull vertex %s isn't an input point", v)
		}
		prev, next := hull.At((i+n-1)%n), hull.At((i+1)%n)
		if side := (Line{prev, v}).Side(next); side >= 0 {
			t.Fatalf("hull isn't strictly convex and clockwise at %s (side %g)", v, side)
		}
	}
	for edge := range hull.Edges() {
		for _, pt := range pts {
			if side := edge.Side(pt); side > eps {
				t.Fatalf("%s lies outside hull edge %v", pt, edge)
			}
		}
	}
}
