package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"honnef.co/go/spatial"
	"honnef.co/go/spatial/internal/geoio"
)

func lengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "length FILE",
		Short: "Print the length of a polyline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCurve(cmd, args[0])
			if err != nil {
				return err
			}
			var length float64
			if c.is3 {
				length = c.pl3.Length()
			} else {
				length = c.pl.Length()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", length)
			return err
		},
	}
}

func atCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "at FILE",
		Short: "Print the point at a fraction of, or a distance along, a polyline",
		Args:  cobra.ExactArgs(1),
	}
	fraction := cmd.Flags().Float64("fraction", 0, "Fraction of the total length, in [0, 1]")
	distance := cmd.Flags().Float64("distance", 0, "Distance from the start, in [0, length]")
	cmd.MarkFlagsMutuallyExclusive("fraction", "distance")
	cmd.MarkFlagsOneRequired("fraction", "distance")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := a.loadCurve(cmd, args[0])
		if err != nil {
			return err
		}
		byFraction := cmd.Flags().Changed("fraction")

		var g geoio.Geometry
		if c.is3 {
			var pt spatial.Point3
			if byFraction {
				pt, err = c.pl3.PointAtFraction(*fraction)
			} else {
				pt, err = c.pl3.PointAtLength(*distance)
			}
			g = geoio.FromPoint3(pt)
		} else {
			var pt spatial.Point
			if byFraction {
				pt, err = c.pl.PointAtFraction(*fraction)
			} else {
				pt, err = c.pl.PointAtLength(*distance)
			}
			g = geoio.FromPoint(pt)
		}
		if err != nil {
			return err
		}
		return a.write(cmd, geoio.Feature{Geometry: g})
	}
	return cmd
}

func closestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "closest FILE X Y [Z]",
		Short: "Print the point of a polyline closest to a query point",
		Long: "Print the point of a polyline closest to a query point, together " +
			"with the index of the segment it lies on.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCurve(cmd, args[0])
			if err != nil {
				return err
			}
			p, p3, err := queryPoint(c, args[1:])
			if err != nil {
				return err
			}

			var (
				idx int
				g   geoio.Geometry
			)
			if c.is3 {
				var pt spatial.Point3
				idx, pt, err = c.pl3.ClosestPointAndIndex(p3)
				g = geoio.FromPoint3(pt)
			} else {
				var pt spatial.Point
				idx, pt, err = c.pl.ClosestPointAndIndex(p)
				g = geoio.FromPoint(pt)
			}
			if err != nil {
				return err
			}
			return a.write(cmd, geoio.Feature{Geometry: g, Properties: map[string]any{"index": idx}})
		},
	}
}

func splitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split FILE {X Y [Z] | --distance D}",
		Short: "Split a polyline at the point closest to a query point, or at a distance along it",
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("distance") {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.RangeArgs(3, 4)(cmd, args)
		},
	}
	distance := cmd.Flags().Float64("distance", 0, "Split at this distance from the start instead of at a point")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := a.loadCurve(cmd, args[0])
		if err != nil {
			return err
		}
		byDistance := cmd.Flags().Changed("distance")

		var p spatial.Point
		var p3 spatial.Point3
		if !byDistance {
			if p, p3, err = queryPoint(c, args[1:]); err != nil {
				return err
			}
		}

		var first, second geoio.Geometry
		if c.is3 {
			var a3, b3 spatial.PolyLine3
			if byDistance {
				a3, b3, err = c.pl3.SplitAtLength(*distance)
			} else {
				a3, b3, err = c.pl3.SplitAtPoint(p3)
			}
			first, second = geoio.FromPolyLine3(a3), geoio.FromPolyLine3(b3)
		} else {
			var a2, b2 spatial.PolyLine
			if byDistance {
				a2, b2, err = c.pl.SplitAtLength(*distance)
			} else {
				a2, b2, err = c.pl.SplitAtPoint(p)
			}
			first, second = geoio.FromPolyLine(a2), geoio.FromPolyLine(b2)
		}
		if err != nil {
			return err
		}
		a.log.Debug("split polyline",
			zap.Int("first", len(first.Coords)),
			zap.Int("second", len(second.Coords)))
		return a.write(cmd, geoio.Feature{Geometry: first}, geoio.Feature{Geometry: second})
	}
	return cmd
}

func dedupeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe FILE",
		Short: "Remove consecutive points of a polyline that lie within the tolerance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCurve(cmd, args[0])
			if err != nil {
				return err
			}
			var g geoio.Geometry
			if c.is3 {
				g = geoio.FromPolyLine3(c.pl3.RemoveAdjacentDuplicates(a.tolerance))
			} else {
				g = geoio.FromPolyLine(c.pl.RemoveAdjacentDuplicates(a.tolerance))
			}
			a.log.Debug("removed duplicates",
				zap.Float64("tolerance", a.tolerance),
				zap.Int("points", len(g.Coords)))
			return a.write(cmd, geoio.Feature{Geometry: g})
		},
	}
}

func resampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resample FILE",
		Short: "Resample a polyline at equal arc-length spacing",
		Long: "Resample a polyline into N points at equal fractions of its length, " +
			"followed by its last point.",
		Args: cobra.ExactArgs(1),
	}
	n := cmd.Flags().IntP("points", "n", 0, "Number of evenly spaced points")
	_ = cmd.MarkFlagRequired("points")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := a.loadCurve(cmd, args[0])
		if err != nil {
			return err
		}
		var g geoio.Geometry
		if c.is3 {
			var out spatial.PolyLine3
			out, err = c.pl3.Resample(*n)
			g = geoio.FromPolyLine3(out)
		} else {
			var out spatial.PolyLine
			out, err = c.pl.Resample(*n)
			g = geoio.FromPolyLine(out)
		}
		if err != nil {
			return err
		}
		return a.write(cmd, geoio.Feature{Geometry: g})
	}
	return cmd
}

func hullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hull FILE",
		Short: "Print the convex hull of a set of 2D points",
		Long: "Print the convex hull of the positions of any 2D geometry, as a " +
			"clockwise polygon.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			pts, err := geoio.Points2(g)
			if err != nil {
				return err
			}
			hull, err := spatial.ConvexHull(pts)
			if err != nil {
				return err
			}
			a.log.Debug("computed hull",
				zap.Int("points", len(pts)),
				zap.Int("vertices", hull.Len()))
			return a.write(cmd, geoio.Feature{
				Geometry:   geoio.FromPolygon(hull),
				Properties: map[string]any{
					"area":      hull.Area(),
					"perimeter": hull.Perimeter(),
				},
			})
		},
	}
}

func containsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains FILE X Y",
		Short: "Report whether a polygon contains a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poly, err := a.loadPolygon(cmd, args[0])
			if err != nil {
				return err
			}
			coords, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			inside := poly.Contains(spatial.Pt(coords[0], coords[1]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), inside)
			return err
		},
	}
}

func boundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FILE...",
		Short: "Print the bounding box of one or more 2D geometries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var box spatial.Rect
			for i, path := range args {
				r, err := a.loadBounds(cmd, path)
				if err != nil {
					return err
				}
				if i == 0 {
					box = r
				} else {
					box = box.Union(r)
				}
			}
			return a.write(cmd, geoio.Feature{
				Geometry: geoio.Geometry{
					Kind: geoio.KindPolygon,
					Coords: [][]float64{
						{box.X0, box.Y0},
						{box.X1, box.Y0},
						{box.X1, box.Y1},
						{box.X0, box.Y1},
					},
				},
				Properties: map[string]any{
					"width":  box.Width(),
					"height": box.Height(),
					"area":   box.Area(),
				},
			})
		},
	}
}

func sliceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice FILE",
		Short: "Print the points where a 3D polyline crosses a plane",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().Float64Slice("origin", []float64{0, 0, 0}, "A point on the plane, as X,Y,Z")
	cmd.Flags().Float64Slice("normal", []float64{0, 0, 1}, "The plane's normal, as X,Y,Z")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		origin, err := vec3Flag(cmd.Flags(), "origin")
		if err != nil {
			return err
		}
		normal, err := vec3Flag(cmd.Flags(), "normal")
		if err != nil {
			return err
		}
		if normal.Hypot2() == 0 {
			return errors.New("--normal must not be the zero vector")
		}

		c, err := a.loadCurve(cmd, args[0])
		if err != nil {
			return err
		}
		if !c.is3 {
			return errors.Errorf("%s: slicing needs a 3D polyline", args[0])
		}

		plane := spatial.NewPlane(spatial.Pt3(origin.X, origin.Y, origin.Z), normal)
		pts := c.pl3.IntersectionsWith(plane, a.tolerance)
		a.log.Debug("sliced polyline",
			zap.Stringer("normal", plane.Normal),
			zap.Int("intersections", len(pts)))
		return a.write(cmd, geoio.Feature{
			Geometry:   geoio.FromPoints3(pts),
			Properties: map[string]any{"count": len(pts)},
		})
	}
	return cmd
}

// vec3Flag returns the value of a three-element float slice flag.
func vec3Flag(flags *pflag.FlagSet, name string) (spatial.Vec3, error) {
	v, err := flags.GetFloat64Slice(name)
	if err != nil {
		return spatial.Vec3{}, errors.Wrapf(err, "--%s", name)
	}
	if len(v) != 3 {
		return spatial.Vec3{}, errors.Errorf("--%s needs 3 values, got %d", name, len(v))
	}
	return spatial.Vec3Of(v[0], v[1], v[2]), nil
}
