package spatial

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values, including those nested in points and
// vectors, with an absolute margin suitable for results of a few arithmetic
// steps.
var approx = cmpopts.EquateApprox(0, 1e-9)

func mustPolyLine(t *testing.T, pts ...Point) PolyLine {
	t.Helper()
	pl, err := NewPolyLine(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return pl
}

func mustPolyLine3(t *testing.T, pts ...Point3) PolyLine3 {
	t.Helper()
	pl, err := NewPolyLine3(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return pl
}

func mustPolygon(t *testing.T, pts ...Point) Polygon {
	t.Helper()
	poly, err := NewPolygon(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return poly
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}
