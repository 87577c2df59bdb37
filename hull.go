package spatial

import "github.com/pkg/errors"

// ConvexHull returns the convex hull of a set of points, using quickhull.
//
// Exactly three points are returned as a polygon as-is, in the given order.
// Otherwise the hull starts at the leftmost point (lowest y on ties) and
// runs over the upper chain to the rightmost point (highest y on ties) and
// back along the lower chain, which is clockwise in a y-up frame. Points on
// the hull's edges but not at its corners are not included, so no three
// consecutive vertices are collinear.
//
// It fails with [ErrInvalidArgument] for fewer than three points, and for
// more than three points that are all collinear or coincident. Two points
// can't be returned unchanged because a [Polygon] needs at least three
// vertices.
//
// The expected running time is O(n log n), degrading to O(n²) for inputs
// where most points lie on the hull. Recursion is managed on an explicit
// stack, so adversarial inputs can't exhaust the goroutine stack.
func ConvexHull(pts []Point) (Polygon, error) {
	switch {
	case len(pts) < 3:
		return Polygon{}, errors.Wrapf(ErrInvalidArgument, "convex hull needs at least 3 points, have %d", len(pts))
	case len(pts) == 3:
		return NewPolygon(pts...)
	}

	leftMost, rightMost := pts[0], pts[0]
	for _, pt := range pts[1:] {
		if pt.X < leftMost.X || (pt.X == leftMost.X && pt.Y < leftMost.Y) {
			leftMost = pt
		}
		if pt.X > rightMost.X || (pt.X == rightMost.X && pt.Y > rightMost.Y) {
			rightMost = pt
		}
	}

	// Points on the chord itself can never be corners of the hull.
	chord := Line{leftMost, rightMost}
	var upper, lower []Point
	for _, pt := range pts {
		switch side := chord.Side(pt); {
		case side > 0:
			upper = append(upper, pt)
		case side < 0:
			lower = append(lower, pt)
		}
	}

	hull := make([]Point, 0, 8)
	hull = append(hull, leftMost)
	hull = appendHullChain(hull, chord, upper)
	hull = append(hull, rightMost)
	hull = appendHullChain(hull, Line{rightMost, leftMost}, lower)
	if len(hull) < 3 {
		return Polygon{}, errors.Wrapf(ErrInvalidArgument, "all %d points are collinear", len(pts))
	}
	return Polygon{pts: hull}, nil
}

type hullTask struct {
	// Either a chord with the candidates strictly to its left...
	chord      Line
	candidates []Point
	// ...or a hull vertex that is ready to be emitted.
	emit   bool
	vertex Point
}

// appendHullChain appends the hull vertices strictly between chord.P0 and
// chord.P1 to hull, in order from P0 to P1. All candidates must lie strictly
// to the left of chord.
func appendHullChain(hull []Point, chord Line, candidates []Point) []Point {
	stack := []hullTask{{chord: chord, candidates: candidates}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if task.emit {
			hull = append(hull, task.vertex)
			continue
		}
		if len(task.candidates) == 0 {
			continue
		}

		far := task.candidates[0]
		farSide := task.chord.Side(far)
		for _, pt := range task.candidates[1:] {
			if side := task.chord.Side(pt); side > farSide {
				far, farSide = pt, side
			}
		}

		// Anything not outside one of the two new chords is inside the
		// triangle (P0, far, P1) and is dropped for good.
		left := Line{task.chord.P0, far}
		right := Line{far, task.chord.P1}
		var outLeft, outRight []Point
		for _, pt := range task.candidates {
			if left.Side(pt) > 0 {
				outLeft = append(outLeft, pt)
			} else if right.Side(pt) > 0 {
				outRight = append(outRight, pt)
			}
		}

		// Pushed in reverse, so that the left chain is emitted first.
		stack = append(stack,
			hullTask{chord: right, candidates: outRight},
			hullTask{emit: true, vertex: far},
			hullTask{chord: left, candidates: outLeft},
		)
	}
	return hull
}
