// Package geoio reads and writes the geometries polytool operates on. It
// supports GeoJSON, WKT, and a small YAML document format, and converts
// between their coordinate lists and the types of package spatial.
package geoio

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedGeometry is returned when a document holds a geometry type
// or coordinate layout that has no counterpart in package spatial.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// Kind is the type of a geometry.
type Kind string

const (
	KindPoint      Kind = "point"
	KindMultiPoint Kind = "multipoint"
	KindLineString Kind = "linestring"
	KindPolygon    Kind = "polygon"
)

// ParseKind parses a geometry kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindPoint, KindMultiPoint, KindLineString, KindPolygon:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedGeometry, "kind %q", s)
	}
}

// Geometry is a single geometry as a flat list of positions. Each position
// has two or three coordinates, and all positions of a geometry have the
// same number of coordinates.
//
// Only multipoints may be empty. Polygons are stored as their outer ring,
// without repeating the first position at the end. The codecs close the ring
// when writing formats that require it.
type Geometry struct {
	Kind   Kind
	Coords [][]float64
}

// Dim returns the number of coordinates per position, or 0 for a geometry
// without positions.
func (g Geometry) Dim() int {
	if len(g.Coords) == 0 {
		return 0
	}
	return len(g.Coords[0])
}

func (g Geometry) validate() error {
	if len(g.Coords) == 0 {
		if g.Kind == KindMultiPoint {
			return nil
		}
		return errors.Wrapf(ErrUnsupportedGeometry, "empty %s", g.Kind)
	}
	if g.Kind == KindPoint && len(g.Coords) != 1 {
		return errors.Errorf("point has %d positions", len(g.Coords))
	}
	dim := g.Dim()
	if dim != 2 && dim != 3 {
		return errors.Wrapf(ErrUnsupportedGeometry, "%d-dimensional positions", dim)
	}
	for i, c := range g.Coords {
		if len(c) != dim {
			return errors.Errorf("position %d has %d coordinates, want %d", i, len(c), dim)
		}
	}
	return nil
}

// Feature is a geometry together with named results of an operation, such as
// a length or an index. Formats that can't carry properties drop them.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// Format is a document format.
type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatWKT     Format = "wkt"
	FormatYAML    Format = "yaml"
)

// ParseFormat parses a format name, ignoring case. "json" and "yml" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "geojson", "json":
		return FormatGeoJSON, nil
	case "wkt":
		return FormatWKT, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unknown format %q", s)
	}
}

// Decode reads a document in format f and returns its first geometry.
func Decode(r io.Reader, f Format) (Geometry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "reading input")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Geometry{}, errors.New("empty input")
	}

	var g Geometry
	switch f {
	case FormatGeoJSON:
		g, err = decodeGeoJSON(data)
	case FormatWKT:
		g, err = decodeWKT(string(data))
	case FormatYAML:
		g, err = decodeYAML(data)
	default:
		return Geometry{}, errors.Errorf("unknown format %q", f)
	}
	if err != nil {
		return Geometry{}, errors.Wrapf(err, "decoding %s", f)
	}
	if g.Kind == KindPolygon {
		g.Coords = openRing(g.Coords)
	}
	if err := g.validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Encode writes features to w in format f.
//
// A single GeoJSON feature is written as a Feature object, several as a
// FeatureCollection. WKT writes one geometry per line and drops properties.
// YAML writes one document per feature.
func Encode(w io.Writer, f Format, features ...Feature) error {
	for _, feat := range features {
		if err := feat.Geometry.validate(); err != nil {
			return err
		}
	}
	switch f {
	case FormatGeoJSON:
		return encodeGeoJSON(w, features)
	case FormatWKT:
		return encodeWKT(w, features)
	case FormatYAML:
		return encodeYAML(w, features)
	default:
		return errors.Errorf("unknown format %q", f)
	}
}

// openRing strips the closing position of a ring.
func openRing(ring [][]float64) [][]float64 {
	if len(ring) > 1 && slices.Equal(ring[0], ring[len(ring)-1]) {
		return ring[:len(ring)-1]
	}
	return ring
}

// closeRing returns ring with its first position repeated at the end.
func closeRing(ring [][]float64) [][]float64 {
	out := make([][]float64, 0, len(ring)+1)
	out = append(out, ring...)
	return append(out, ring[0])
}
