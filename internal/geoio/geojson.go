package geoio

import (
	"encoding/json"
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// decodeGeoJSON accepts a bare geometry object, a Feature, or a
// FeatureCollection, in which case the first feature is used.
func decodeGeoJSON(data []byte) (Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Geometry{}, errors.Wrap(err, "reading object type")
	}

	var g *geojson.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Geometry{}, err
		}
		if len(fc.Features) == 0 {
			return Geometry{}, errors.New("feature collection has no features")
		}
		g = fc.Features[0].Geometry
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Geometry{}, err
		}
		g = f.Geometry
	default:
		var err error
		g, err = geojson.UnmarshalGeometry(data)
		if err != nil {
			return Geometry{}, err
		}
	}
	if g == nil {
		return Geometry{}, errors.Wrap(ErrUnsupportedGeometry, "feature has no geometry")
	}
	return fromGeoJSONGeometry(g)
}

func fromGeoJSONGeometry(g *geojson.Geometry) (Geometry, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		return Geometry{Kind: KindPoint, Coords: [][]float64{g.Point}}, nil
	case geojson.GeometryMultiPoint:
		return Geometry{Kind: KindMultiPoint, Coords: g.MultiPoint}, nil
	case geojson.GeometryLineString:
		return Geometry{Kind: KindLineString, Coords: g.LineString}, nil
	case geojson.GeometryPolygon:
		if len(g.Polygon) == 0 {
			return Geometry{}, errors.Wrap(ErrUnsupportedGeometry, "polygon without rings")
		}
		return Geometry{Kind: KindPolygon, Coords: g.Polygon[0]}, nil
	default:
		return Geometry{}, errors.Wrapf(ErrUnsupportedGeometry, "GeoJSON %s", g.Type)
	}
}

func toGeoJSONGeometry(g Geometry) *geojson.Geometry {
	switch g.Kind {
	case KindPoint:
		return geojson.NewPointGeometry(g.Coords[0])
	case KindMultiPoint:
		return geojson.NewMultiPointGeometry(g.Coords...)
	case KindLineString:
		return geojson.NewLineStringGeometry(g.Coords)
	case KindPolygon:
		return geojson.NewPolygonGeometry([][][]float64{closeRing(g.Coords)})
	default:
		panic("unreachable")
	}
}

func toGeoJSONFeature(f Feature) *geojson.Feature {
	out := geojson.NewFeature(toGeoJSONGeometry(f.Geometry))
	for k, v := range f.Properties {
		out.SetProperty(k, v)
	}
	return out
}

func encodeGeoJSON(w io.Writer, features []Feature) error {
	var (
		data []byte
		err  error
	)
	if len(features) == 1 {
		data, err = toGeoJSONFeature(features[0]).MarshalJSON()
	} else {
		fc := geojson.NewFeatureCollection()
		for _, f := range features {
			fc.AddFeature(toGeoJSONFeature(f))
		}
		data, err = fc.MarshalJSON()
	}
	if err != nil {
		return errors.Wrap(err, "encoding GeoJSON")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
