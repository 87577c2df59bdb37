package main

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/spatial"
	"honnef.co/go/spatial/internal/geoio"
)

// load reads the geometry in path, or standard input if path is "-".
func (a *app) load(cmd *cobra.Command, path string) (geoio.Geometry, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return geoio.Geometry{}, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	g, err := geoio.Decode(r, a.inputFormat)
	if err != nil {
		a.log.Error("could not load geometry", zap.String("path", path), zap.Error(err))
		return geoio.Geometry{}, err
	}
	a.log.Debug("loaded geometry",
		zap.String("path", path),
		zap.String("kind", string(g.Kind)),
		zap.Int("points", len(g.Coords)),
		zap.Int("dim", g.Dim()))
	return g, nil
}

// curve is a polyline of either dimension, as loaded from a line string.
type curve struct {
	pl  spatial.PolyLine
	pl3 spatial.PolyLine3
	is3 bool
}

func (a *app) loadCurve(cmd *cobra.Command, path string) (curve, error) {
	g, err := a.load(cmd, path)
	if err != nil {
		return curve{}, err
	}
	if g.Kind != geoio.KindLineString {
		return curve{}, errors.Errorf("%s: want a linestring, got %s", path, g.Kind)
	}
	if g.Dim() == 3 {
		pts, err := geoio.Points3(g)
		if err != nil {
			return curve{}, err
		}
		pl, err := spatial.NewPolyLine3(pts...)
		return curve{pl3: pl, is3: true}, err
	}
	pts, err := geoio.Points2(g)
	if err != nil {
		return curve{}, err
	}
	pl, err := spatial.NewPolyLine(pts...)
	return curve{pl: pl}, err
}

func (a *app) loadPolygon(cmd *cobra.Command, path string) (spatial.Polygon, error) {
	g, err := a.load(cmd, path)
	if err != nil {
		return spatial.Polygon{}, err
	}
	if g.Kind != geoio.KindPolygon {
		return spatial.Polygon{}, errors.Errorf("%s: want a polygon, got %s", path, g.Kind)
	}
	pts, err := geoio.Points2(g)
	if err != nil {
		return spatial.Polygon{}, err
	}
	return spatial.NewPolygon(pts...)
}

// loadBounds returns the bounding box of the 2D geometry in path.
func (a *app) loadBounds(cmd *cobra.Command, path string) (spatial.Rect, error) {
	g, err := a.load(cmd, path)
	if err != nil {
		return spatial.Rect{}, err
	}
	pts, err := geoio.Points2(g)
	if err != nil {
		return spatial.Rect{}, err
	}
	switch g.Kind {
	case geoio.KindLineString:
		pl, err := spatial.NewPolyLine(pts...)
		if err != nil {
			return spatial.Rect{}, err
		}
		return pl.BoundingBox(), nil
	case geoio.KindPolygon:
		poly, err := spatial.NewPolygon(pts...)
		if err != nil {
			return spatial.Rect{}, err
		}
		return poly.BoundingBox(), nil
	default:
		r := spatial.NewRectFromPoints(pts[0], pts[0])
		for _, pt := range pts[1:] {
			r = r.UnionPoint(pt)
		}
		return r, nil
	}
}

// write encodes features to the command's output in the output format.
func (a *app) write(cmd *cobra.Command, features ...geoio.Feature) error {
	return geoio.Encode(cmd.OutOrStdout(), a.outputFormat, features...)
}

// parseCoords parses command line arguments as coordinates.
func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// queryPoint parses the query point arguments of a command operating on c,
// which must have as many coordinates as c has dimensions.
func queryPoint(c curve, args []string) (spatial.Point, spatial.Point3, error) {
	coords, err := parseCoords(args)
	if err != nil {
		return spatial.Point{}, spatial.Point3{}, err
	}
	switch {
	case c.is3 && len(coords) == 3:
		return spatial.Point{}, spatial.Pt3(coords[0], coords[1], coords[2]), nil
	case !c.is3 && len(coords) == 2:
		return spatial.Pt(coords[0], coords[1]), spatial.Point3{}, nil
	default:
		dim := 2
		if c.is3 {
			dim = 3
		}
		return spatial.Point{}, spatial.Point3{}, errors.Errorf("need %d coordinates for a %dD polyline, got %d", dim, dim, len(coords))
	}
}
