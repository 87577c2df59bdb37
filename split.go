package spatial

import "github.com/pkg/errors"

// splitAt cuts the chain after point i and joins both halves at pt. Both
// halves own their storage.
func (c chain[P]) splitAt(i int, pt P) (chain[P], chain[P]) {
	a := make(chain[P], 0, i+2)
	a = append(a, c[:i+1]...)
	a = append(a, pt)

	b := make(chain[P], 0, len(c)-i)
	b = append(b, pt)
	b = append(b, c[i+1:]...)
	return a, b
}

func (c chain[P]) splitAtPoint(p P) (chain[P], chain[P], error) {
	i, projected, err := c.closest(p)
	if err != nil {
		return nil, nil, err
	}
	a, b := c.splitAt(i, projected)
	return a, b, nil
}

func (c chain[P]) splitAtLength(d float64) (chain[P], chain[P], error) {
	if err := needSegments(len(c)); err != nil {
		return nil, nil, err
	}
	i, pt := c.locate(d, c.length())
	a, b := c.splitAt(i, pt)
	return a, b, nil
}

// resample returns n points at equal arc-length fractions 0, 1/n, …,
// (n-1)/n, followed by the chain's own last point.
func (c chain[P]) resample(n int) (chain[P], error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot resample into %d points", n)
	}
	if err := needSegments(len(c)); err != nil {
		return nil, err
	}

	length := c.length()
	fraction := 1.0 / float64(n)
	out := make(chain[P], 0, n+1)
	for i := range n {
		_, pt := c.locate(float64(i)*fraction*length, length)
		out = append(out, pt)
	}
	out = append(out, c[len(c)-1])
	return out, nil
}

// SplitAtPoint projects p onto the polyline and splits it there. The first
// result runs from the start of the polyline to the projection, the second
// from the projection to the end. The projection is the last point of the
// first half and the first point of the second.
//
// It fails with [ErrInvalidState] if the polyline has fewer than two points.
func (pl PolyLine) SplitAtPoint(p Point) (PolyLine, PolyLine, error) {
	a, b, err := pl.pts.splitAtPoint(p)
	return PolyLine{a}, PolyLine{b}, err
}

// SplitAtLength splits the polyline at the point d units along it. d is
// clamped to the polyline's length.
//
// It fails with [ErrInvalidState] if the polyline has fewer than two points.
func (pl PolyLine) SplitAtLength(d float64) (PolyLine, PolyLine, error) {
	a, b, err := pl.pts.splitAtLength(d)
	return PolyLine{a}, PolyLine{b}, err
}

// Resample returns a polyline of n+1 points: n points spaced evenly by arc
// length starting at the first point, followed by the original last point.
//
// It fails with [ErrInvalidArgument] if n < 1 and with [ErrInvalidState] if
// the polyline has fewer than two points.
func (pl PolyLine) Resample(n int) (PolyLine, error) {
	pts, err := pl.pts.resample(n)
	return PolyLine{pts}, err
}

// SplitAtPoint is the 3D counterpart of [PolyLine.SplitAtPoint].
func (pl PolyLine3) SplitAtPoint(p Point3) (PolyLine3, PolyLine3, error) {
	a, b, err := pl.pts.splitAtPoint(p)
	return PolyLine3{a}, PolyLine3{b}, err
}

// SplitAtLength is the 3D counterpart of [PolyLine.SplitAtLength].
func (pl PolyLine3) SplitAtLength(d float64) (PolyLine3, PolyLine3, error) {
	a, b, err := pl.pts.splitAtLength(d)
	return PolyLine3{a}, PolyLine3{b}, err
}

// Resample is the 3D counterpart of [PolyLine.Resample].
func (pl PolyLine3) Resample(n int) (PolyLine3, error) {
	pts, err := pl.pts.resample(n)
	return PolyLine3{pts}, err
}
