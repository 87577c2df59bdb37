package geoio

import (
	"bytes"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"geojson": FormatGeoJSON,
		"JSON":    FormatGeoJSON,
		"wkt":     FormatWKT,
		"yaml":    FormatYAML,
		"yml":     FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("kml")
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("LineString")
	require.NoError(t, err)
	assert.Equal(t, KindLineString, k)

	_, err = ParseKind("multipolygon")
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)
}

func TestDecodeGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Geometry
	}{
		{
			"bare geometry",
			`{"type": "LineString", "coordinates": [[0, 0], [3, 4]]}`,
			Geometry{KindLineString, [][]float64{{0, 0}, {3, 4}}},
		},
		{
			"feature",
			`{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}}`,
			Geometry{KindPoint, [][]float64{{1, 2}}},
		},
		{
			"feature collection",
			`{"type": "FeatureCollection", "features": [
				{"type": "Feature", "properties": {}, "geometry": {"type": "MultiPoint", "coordinates": [[1, 2], [3, 4]]}},
				{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [9, 9]}}
			]}`,
			Geometry{KindMultiPoint, [][]float64{{1, 2}, {3, 4}}},
		},
		{
			"closed polygon ring is opened",
			`{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}`,
			Geometry{KindPolygon, [][]float64{{0, 0}, {1, 0}, {1, 1}}},
		},
		{
			"3D line",
			`{"type": "LineString", "coordinates": [[0, 0, 0], [1, 2, 3]]}`,
			Geometry{KindLineString, [][]float64{{0, 0, 0}, {1, 2, 3}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.in), FormatGeoJSON)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		format      Format
		in          string
		unsupported bool
	}{
		{"empty input", FormatGeoJSON, "  \n", false},
		{"invalid JSON", FormatGeoJSON, `{"type": `, false},
		{"multipolygon", FormatGeoJSON, `{"type": "MultiPolygon", "coordinates": [[[[0, 0], [1, 0], [1, 1], [0, 0]]]]}`, true},
		{"empty collection", FormatGeoJSON, `{"type": "FeatureCollection", "features": []}`, false},
		{"mixed dimensions", FormatGeoJSON, `{"type": "LineString", "coordinates": [[0, 0], [1, 2, 3]]}`, false},
		{"4D positions", FormatGeoJSON, `{"type": "LineString", "coordinates": [[0, 0, 0, 0], [1, 2, 3, 4]]}`, true},
		{"measured WKT", FormatWKT, "LINESTRING M (1 2 3, 4 5 6)", true},
		{"WKT syntax", FormatWKT, "LINESTRING (1 2", false},
		{"WKT multilinestring", FormatWKT, "MULTILINESTRING ((1 2, 3 4))", true},
		{"YAML kind", FormatYAML, "kind: circle\npoints: [[0, 0]]\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), tt.format)
			require.Error(t, err)
			if tt.unsupported {
				assert.ErrorIs(t, err, ErrUnsupportedGeometry)
			}
		})
	}
}

func TestDecodeWKT(t *testing.T) {
	tests := []struct {
		in   string
		want Geometry
	}{
		{"POINT (1 2)", Geometry{KindPoint, [][]float64{{1, 2}}}},
		{"LINESTRING (0 0, 3 4)", Geometry{KindLineString, [][]float64{{0, 0}, {3, 4}}}},
		{"LINESTRING Z (0 0 0, 1 2 3)", Geometry{KindLineString, [][]float64{{0, 0, 0}, {1, 2, 3}}}},
		{"POLYGON ((0 0, 1 0, 1 1, 0 0))", Geometry{KindPolygon, [][]float64{{0, 0}, {1, 0}, {1, 1}}}},
		{"MULTIPOINT (1 2, 3 4)", Geometry{KindMultiPoint, [][]float64{{1, 2}, {3, 4}}}},
	}
	for _, tt := range tests {
		got, err := Decode(strings.NewReader(tt.in), FormatWKT)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDecodeYAML(t *testing.T) {
	in := `
kind: polygon
points:
  - [0, 0]
  - [2, 0]
  - [2, 2]
`
	got, err := Decode(strings.NewReader(in), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Geometry{KindPolygon, [][]float64{{0, 0}, {2, 0}, {2, 2}}}, got)
}

func TestEncodeWKT(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, FormatWKT,
		Feature{Geometry: Geometry{KindLineString, [][]float64{{0, 0}, {1, 0.5}}}},
		Feature{Geometry: Geometry{KindPolygon, [][]float64{{0, 0}, {1, 0}, {1, 1}}}},
		Feature{Geometry: Geometry{KindPoint, [][]float64{{1, 2, 3}}}},
	)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (0 0, 1 0.5)\nPOLYGON ((0 0, 1 0, 1 1, 0 0))\nPOINT Z (1 2 3)\n", buf.String())
}

func TestEncodeGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	line := Geometry{KindLineString, [][]float64{{0, 0}, {3, 4}}}
	err := Encode(&buf, FormatGeoJSON, Feature{Geometry: line, Properties: map[string]any{"length": 5.0}})
	require.NoError(t, err)

	f, err := geojson.UnmarshalFeature(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, f.Geometry.IsLineString())
	assert.Equal(t, line.Coords, f.Geometry.LineString)
	length, err := f.PropertyFloat64("length")
	require.NoError(t, err)
	assert.Equal(t, 5.0, length)

	buf.Reset()
	poly := Geometry{KindPolygon, [][]float64{{0, 0}, {1, 0}, {1, 1}}}
	require.NoError(t, Encode(&buf, FormatGeoJSON, Feature{Geometry: line}, Feature{Geometry: poly}))
	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, fc.Features[1].Geometry.Polygon)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, FormatYAML,
		Feature{Geometry: Geometry{KindLineString, [][]float64{{0, 0}, {2, 1}}}, Properties: map[string]any{"index": 0}},
		Feature{Geometry: Geometry{KindLineString, [][]float64{{2, 1}, {2, 2}}}},
	)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "kind: linestring\n")
	assert.Contains(t, out, "points: [[0, 0], [2, 1]]\n")
	assert.Contains(t, out, "index: 0")
	assert.Contains(t, out, "---\n")
}

func TestEncodeRejectsInvalidGeometry(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, FormatGeoJSON, Feature{Geometry: Geometry{KindLineString, nil}})
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)

	err = Encode(&buf, FormatWKT, Feature{Geometry: Geometry{KindPoint, [][]float64{{0, 0}, {1, 1}}}})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRoundTrip(t *testing.T) {
	geoms := []Geometry{
		{KindPoint, [][]float64{{1.5, -2}}},
		{KindLineString, [][]float64{{0, 0}, {3, 4}, {3, 10}}},
		{KindLineString, [][]float64{{0, 0, -1}, {0, 0, 1}, {1, 0, 1}}},
		{KindPolygon, [][]float64{{0.25, 0}, {0.5, 1}, {1, -1}}},
		{KindMultiPoint, [][]float64{{1, 2}, {3, 4}}},
	}
	for _, f := range []Format{FormatGeoJSON, FormatWKT, FormatYAML} {
		for _, g := range geoms {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, f, Feature{Geometry: g}))
			got, err := Decode(&buf, f)
			require.NoError(t, err, "%s %s", f, g.Kind)
			assert.Equal(t, g, got, "%s %s", f, g.Kind)
		}
	}
}
