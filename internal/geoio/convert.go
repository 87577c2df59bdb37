package geoio

import (
	"github.com/pkg/errors"

	"honnef.co/go/spatial"
)

// Points2 returns the positions of g as 2D points. It fails if g has 3D
// positions.
func Points2(g Geometry) ([]spatial.Point, error) {
	if d := g.Dim(); d != 2 {
		return nil, errors.Errorf("%s has %d-dimensional positions, want 2", g.Kind, d)
	}
	pts := make([]spatial.Point, len(g.Coords))
	for i, c := range g.Coords {
		pts[i] = spatial.Pt(c[0], c[1])
	}
	return pts, nil
}

// Points3 returns the positions of g as 3D points. It fails if g has 2D
// positions.
func Points3(g Geometry) ([]spatial.Point3, error) {
	if d := g.Dim(); d != 3 {
		return nil, errors.Errorf("%s has %d-dimensional positions, want 3", g.Kind, d)
	}
	pts := make([]spatial.Point3, len(g.Coords))
	for i, c := range g.Coords {
		pts[i] = spatial.Pt3(c[0], c[1], c[2])
	}
	return pts, nil
}

func FromPoint(pt spatial.Point) Geometry {
	return Geometry{Kind: KindPoint, Coords: [][]float64{{pt.X, pt.Y}}}
}

func FromPoint3(pt spatial.Point3) Geometry {
	return Geometry{Kind: KindPoint, Coords: [][]float64{{pt.X, pt.Y, pt.Z}}}
}

// FromPoints returns a multipoint of pts.
func FromPoints(pts []spatial.Point) Geometry {
	return Geometry{Kind: KindMultiPoint, Coords: coords2(pts)}
}

// FromPoints3 returns a multipoint of pts.
func FromPoints3(pts []spatial.Point3) Geometry {
	return Geometry{Kind: KindMultiPoint, Coords: coords3(pts)}
}

func FromPolyLine(pl spatial.PolyLine) Geometry {
	return Geometry{Kind: KindLineString, Coords: coords2(pl.Points())}
}

func FromPolyLine3(pl spatial.PolyLine3) Geometry {
	return Geometry{Kind: KindLineString, Coords: coords3(pl.Points())}
}

func FromPolygon(poly spatial.Polygon) Geometry {
	return Geometry{Kind: KindPolygon, Coords: coords2(poly.Points())}
}

func coords2(pts []spatial.Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, pt := range pts {
		out[i] = []float64{pt.X, pt.Y}
	}
	return out
}

func coords3(pts []spatial.Point3) [][]float64 {
	out := make([][]float64, len(pts))
	for i, pt := range pts {
		out[i] = []float64{pt.X, pt.Y, pt.Z}
	}
	return out
}
