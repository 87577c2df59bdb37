package spatial

import "slices"

// removeAdjacentDuplicates drops every point that is within tolerance of the
// last point kept so far. Comparing against the last kept point, rather than
// the immediately preceding input point, means that a run of near-duplicates
// collapses to its first point even if the run drifts further than tolerance
// in total.
func (c chain[P]) removeAdjacentDuplicates(tolerance float64) chain[P] {
	if len(c) == 0 {
		return nil
	}
	out := chain[P]{c[0]}
	for _, pt := range c[1:] {
		if !out[len(out)-1].ApproxEqual(pt, tolerance) {
			out = append(out, pt)
		}
	}
	return out
}

// RemoveAdjacentDuplicates returns a polyline without consecutive points that
// are equal within tolerance. See [DefaultTolerance] for a suitable default.
//
// Applying it more than once has no further effect.
func (pl PolyLine) RemoveAdjacentDuplicates(tolerance float64) PolyLine {
	return PolyLine{pl.pts.removeAdjacentDuplicates(tolerance)}
}

// RemoveAdjacentDuplicates is the 3D counterpart of
// [PolyLine.RemoveAdjacentDuplicates].
func (pl PolyLine3) RemoveAdjacentDuplicates(tolerance float64) PolyLine3 {
	return PolyLine3{pl.pts.removeAdjacentDuplicates(tolerance)}
}

// RemoveCollinear returns a polygon without vertices that lie within
// tolerance of the line through their two neighbours. This also removes
// repeated vertices and zero-width spikes.
//
// It fails with [ErrInvalidArgument] if fewer than three vertices remain.
func (poly Polygon) RemoveCollinear(tolerance float64) (Polygon, error) {
	pts := slices.Clone(poly.pts)
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(pts) && len(pts) >= 3; i++ {
			prev := pts[(i+len(pts)-1)%len(pts)]
			next := pts[(i+1)%len(pts)]
			chord := Line{prev, next}
			if pts[i].Distance(chord.ClosestPoint(pts[i], false)) <= tolerance {
				pts = slices.Delete(pts, i, i+1)
				changed = true
				i--
			}
		}
	}
	return NewPolygon(pts...)
}
