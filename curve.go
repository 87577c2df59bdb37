package spatial

import (
	"iter"
	"math"

	"github.com/pkg/errors"
)

// DefaultTolerance is a default value for methods that take a tolerance
// argument.
const DefaultTolerance = 1e-6

// vertex is the set of point operations the curve algorithms need. It is
// satisfied by [Point] and [Point3].
type vertex[P any] interface {
	comparable
	Distance(o P) float64
	Lerp(o P, t float64) P
	ApproxEqual(o P, tolerance float64) bool
	IsNaN() bool
	// nearestOnSegment returns the point on the segment [p0, p1] closest to
	// the receiver.
	nearestOnSegment(p0, p1 P) P
}

// chain is the dimension-independent core of [PolyLine] and [PolyLine3]: an
// ordered sequence of points interpreted as connected line segments.
//
// Methods never modify the receiver. Results that are chains are freshly
// allocated.
type chain[P vertex[P]] []P

func (c chain[P]) all() iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i, pt := range c {
			if !yield(i, pt) {
				return
			}
		}
	}
}

func (c chain[P]) length() float64 {
	var l float64
	for i := 0; i+1 < len(c); i++ {
		l += c[i].Distance(c[i+1])
	}
	return l
}

// locate finds the point at arc length d along the chain, together with the
// index of the segment that contains it. length must be c.length(). d is
// clamped to [0, length]. c must have at least two points.
func (c chain[P]) locate(d, length float64) (int, P) {
	if d >= length {
		return len(c) - 2, c[len(c)-1]
	}
	if d <= 0 {
		return 0, c[0]
	}

	var cum float64
	for i := 0; i+1 < len(c); i++ {
		segLen := c[i].Distance(c[i+1])
		next := cum + segLen
		if cum <= d && d < next {
			return i, c[i].Lerp(c[i+1], (d-cum)/segLen)
		}
		cum = next
	}
	// The running sum can round to slightly less than length.
	return len(c) - 2, c[len(c)-1]
}

func (c chain[P]) pointAtLength(d float64) (P, error) {
	if err := needSegments(len(c)); err != nil {
		return *new(P), err
	}
	_, pt := c.locate(d, c.length())
	return pt, nil
}

func (c chain[P]) pointAtFraction(f float64) (P, error) {
	if !(f >= 0 && f <= 1) {
		return *new(P), errors.Wrapf(ErrInvalidArgument, "fraction %g is not in [0, 1]", f)
	}
	if err := needSegments(len(c)); err != nil {
		return *new(P), err
	}
	length := c.length()
	_, pt := c.locate(f*length, length)
	return pt, nil
}

// closest projects p onto every segment and returns the index of the first
// point of the segment with the nearest projection, and the projection
// itself. Ties go to the lowest index.
func (c chain[P]) closest(p P) (int, P, error) {
	if err := needSegments(len(c)); err != nil {
		return 0, *new(P), err
	}
	if p.IsNaN() {
		return 0, *new(P), errors.Wrapf(ErrInvalidArgument, "query point %v has NaN coordinates", p)
	}

	var best option[P]
	bestIdx := 0
	minDist := math.Inf(1)
	for i := 0; i+1 < len(c); i++ {
		projected := p.nearestOnSegment(c[i], c[i+1])
		if d := p.Distance(projected); d < minDist {
			minDist = d
			bestIdx = i
			best.set(projected)
		}
	}
	if !best.isSet {
		// Every distance is infinite or NaN, as for an infinite query point.
		return 0, *new(P), errors.Wrapf(ErrInvalidArgument, "cannot project %v onto polyline", p)
	}
	return bestIdx, best.unwrap(), nil
}

func (c chain[P]) mapPoints(fn func(P) P) chain[P] {
	out := make(chain[P], len(c))
	for i, pt := range c {
		out[i] = fn(pt)
	}
	return out
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
