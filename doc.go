// Package spatial provides immutable 2D and 3D points and vectors, and
// algorithms over ordered point sequences: polylines and closed polygons.
//
// # Primitives
//
// [Point], [Vec2], [Line], [Affine], and [Rect] cover the plane; [Point3],
// [Vec3], [Line3], [Plane], and [Ray3] cover space. 3D vector arithmetic is
// delegated to gonum's r3 package. Angles are always expressed in radians.
//
// # Polylines
//
// [PolyLine] and [PolyLine3] interpret an ordered sequence of points as a
// piecewise linear curve. They support measuring ([PolyLine.Length]),
// arc-length parameterization ([PolyLine.PointAtLength],
// [PolyLine.PointAtFraction]), projection ([PolyLine.ClosestPoint]),
// splitting at the projection of a point ([PolyLine.SplitAtPoint]),
// resampling ([PolyLine.Resample]), and collapsing near-duplicate points
// ([PolyLine.RemoveAdjacentDuplicates]). In 3D, [PolyLine3.IntersectionsWith]
// enumerates the crossings of a polyline with a plane.
//
// Both types share one implementation of these algorithms, which is generic
// over the point type.
//
// # Polygons and convex hulls
//
// [Polygon] is an implicitly closed ring of at least three vertices.
// [IsPointInPolygon] classifies points with the even-odd rule. [ConvexHull]
// computes the hull of an unordered set of points with quickhull.
//
// # Errors
//
// Operations that can fail return errors wrapping [ErrInvalidArgument],
// [ErrInvalidState], or [ErrUnsupported]. These signal misuse, not transient
// conditions: the operations are deterministic and retrying with the same
// input fails the same way.
//
// # Immutability
//
// All values are immutable once constructed. Every operation returns new
// values that don't share storage with their inputs, so any value may be
// used from multiple goroutines without synchronization.
package spatial
