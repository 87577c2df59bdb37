package geoio

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func decodeWKT(s string) (Geometry, error) {
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return Geometry{}, err
	}
	switch l := t.Layout(); l {
	case geom.XY, geom.XYZ:
	default:
		return Geometry{}, errors.Wrapf(ErrUnsupportedGeometry, "layout %s", l)
	}

	switch t := t.(type) {
	case *geom.Point:
		if t.Empty() {
			return Geometry{}, errors.Wrap(ErrUnsupportedGeometry, "empty point")
		}
		return Geometry{Kind: KindPoint, Coords: [][]float64{t.Coords()}}, nil
	case *geom.MultiPoint:
		return Geometry{Kind: KindMultiPoint, Coords: fromCoords(t.Coords())}, nil
	case *geom.LineString:
		return Geometry{Kind: KindLineString, Coords: fromCoords(t.Coords())}, nil
	case *geom.Polygon:
		rings := t.Coords()
		if len(rings) == 0 {
			return Geometry{}, errors.Wrap(ErrUnsupportedGeometry, "empty polygon")
		}
		return Geometry{Kind: KindPolygon, Coords: fromCoords(rings[0])}, nil
	default:
		return Geometry{}, errors.Wrapf(ErrUnsupportedGeometry, "WKT %T", t)
	}
}

func toWKT(g Geometry) (geom.T, error) {
	layout := geom.XY
	if g.Dim() == 3 {
		layout = geom.XYZ
	}
	switch g.Kind {
	case KindPoint:
		return geom.NewPoint(layout).SetCoords(g.Coords[0])
	case KindMultiPoint:
		return geom.NewMultiPoint(layout).SetCoords(toCoords(g.Coords))
	case KindLineString:
		return geom.NewLineString(layout).SetCoords(toCoords(g.Coords))
	case KindPolygon:
		return geom.NewPolygon(layout).SetCoords([][]geom.Coord{toCoords(closeRing(g.Coords))})
	default:
		panic("unreachable")
	}
}

func encodeWKT(w io.Writer, features []Feature) error {
	for _, f := range features {
		t, err := toWKT(f.Geometry)
		if err != nil {
			return errors.Wrap(err, "building WKT geometry")
		}
		s, err := wkt.Marshal(t)
		if err != nil {
			return errors.Wrap(err, "encoding WKT")
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func fromCoords(cs []geom.Coord) [][]float64 {
	out := make([][]float64, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func toCoords(cs [][]float64) []geom.Coord {
	out := make([]geom.Coord, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
