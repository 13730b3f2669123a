package icplace

import (
	"math"
	"slices"
)

// WedgeInDomain reports whether some region of positive area of the domain
// lies inside the wedge.
//
// When the wedge's center is inside the domain, the farthest the domain
// reaches along a bearing is largest at the wedge's bounding rays or at a
// domain corner, so testing those against R0 decides the question.
//
// When the center is outside, the domain is reflected into a canonical frame
// where it lies above the center at bearings in (0°, 180°). Along a bearing θ
// the domain then covers the distances [near(θ), far(θ)], where both bounds
// are the distance to one domain edge. The visible bearings are cut at the
// corners and at 90° so that each piece has a single near edge and a single
// far edge and both distances are monotone on it. Each piece is then checked
// for a bearing where near < R1 and far > R0, including the case where the
// two conditions only overlap strictly inside the piece.
func WedgeInDomain(d Domain, w Wedge) bool {
	if !w.WellFormed() {
		return false
	}
	c := w.Center()
	if !annulusReaches(d, c, w.R0, w.R1) {
		return false
	}
	th1, th2 := NormalizeThetas(w.Theta1, w.Theta2)
	if th2-th1 >= 360-angleEpsilon {
		return true
	}
	if d.DistanceSquared(c) == 0 {
		return wedgeFromInside(d, c, w.R0, th1, th2)
	}
	f, th1, th2 := newCanonicalFrame(d, c, th1, th2)
	return f.sweep(th1, th2, w.R0*w.R0, w.R1*w.R1)
}

func wedgeFromInside(d Domain, c Point, r0, th1, th2 float64) bool {
	for _, b := range [...]float64{th1, th2} {
		if d.exitDistance(c, VecFromBearing(b)) > r0 {
			return true
		}
	}
	for _, b := range [...]float64{0, 90, 180, 270} {
		if bearingWithin(b, th1, th2) && d.exitDistance(c, VecFromBearing(b)) > r0 {
			return true
		}
	}
	for _, corner := range d.Rect().Corners() {
		if corner == c {
			continue
		}
		if bearingWithin(Angle(corner, c), th1, th2) && corner.DistanceSquared(c) > r0*r0 {
			return true
		}
	}
	return false
}

// canonicalFrame is the domain as seen from a wedge center outside of it,
// after translating the center to the origin and reflecting so that the
// domain lies at positive y.
type canonicalFrame struct {
	box Rect
	// lo and hi bound the bearings under which the domain is visible.
	lo, hi float64
	// breaks are the bearings where the near or far edge changes or stops
	// being monotone.
	breaks [5]float64
}

// newCanonicalFrame builds the frame for center c, which must lie outside d,
// and maps the normalized span [th1, th2] into it.
func newCanonicalFrame(d Domain, c Point, th1, th2 float64) (canonicalFrame, float64, float64) {
	aff := Translate(Vec2(c).Negate())
	box := aff.TransformRectBoundingBox(d.Rect())
	if box.X1 < 0 {
		aff = aff.Then(FlipX)
		th1, th2 = 180-th2, 180-th1
		box = aff.TransformRectBoundingBox(d.Rect())
	}
	if box.Y1 < 0 {
		aff = aff.Then(FlipY)
		th1, th2 = -th2, -th1
		box = aff.TransformRectBoundingBox(d.Rect())
	}
	if box.Y0 <= 0 {
		// The center is level with the domain, which is now to its right.
		aff = aff.Then(SwapXY)
		th1, th2 = 90-th2, 90-th1
		box = aff.TransformRectBoundingBox(d.Rect())
	}

	f := canonicalFrame{box: box, lo: 180, hi: 0}
	for i, corner := range box.Corners() {
		b := Vec2(corner).Bearing()
		f.breaks[i] = b
		f.lo = min(f.lo, b)
		f.hi = max(f.hi, b)
	}
	f.breaks[4] = 90
	th1, th2 = NormalizeThetas(th1, th2)
	return f, th1, th2
}

// sweep reports whether the normalized span [th1, th2] sees part of the box
// at a distance between r0 and r1. The radii are given squared.
func (f canonicalFrame) sweep(th1, th2, r0sq, r1sq float64) bool {
	// th1 ≥ -180 and the visible bearings are below 180, so at most the span
	// and its copy one turn lower can meet them.
	for _, shift := range [...]float64{0, -360} {
		a := max(th1+shift, f.lo)
		b := min(th2+shift, f.hi)
		if b <= a {
			continue
		}
		marks := []float64{a, b}
		for _, br := range f.breaks {
			if a < br && br < b {
				marks = append(marks, br)
			}
		}
		slices.Sort(marks)
		for i := 1; i < len(marks); i++ {
			lo, hi := marks[i-1], marks[i]
			if hi <= lo {
				continue
			}
			near, far, ok := f.edgesAt(0.5 * (lo + hi))
			if ok && pieceHits(near, far, lo, hi, r0sq, r1sq) {
				return true
			}
		}
	}
	return false
}

// edge is a domain edge seen from the origin: the line at distance k whose
// normal points at bearing phi. A ray at bearing θ meets it at k / cos(θ−φ).
type edge struct {
	k, phi float64
}

func (e edge) dist(th float64) float64 {
	return e.k / math.Cos(radians(th-e.phi))
}

func (e edge) dist2(th float64) float64 {
	t := e.dist(th)
	return t * t
}

// crossing returns the bearing in [a, b] where the edge is at distance r.
// The edge must be monotone on [a, b] and straddle r there.
func (e edge) crossing(a, b, r float64) float64 {
	delta := degrees(math.Acos(min(e.k/r, 1)))
	if 0.5*(a+b) >= e.phi {
		return e.phi + delta
	}
	return e.phi - delta
}

// edgesAt returns the edges that bound the box along bearing th from the
// near and far side. ok is false if the ray misses the box.
func (f canonicalFrame) edgesAt(th float64) (near, far edge, ok bool) {
	s, co := math.Sincos(radians(th))
	if s <= 0 {
		return edge{}, edge{}, false
	}
	near, far = edge{f.box.Y0, 90}, edge{f.box.Y1, 90}
	nearT, farT := f.box.Y0/s, f.box.Y1/s

	var in, out edge
	switch {
	case co > 0:
		in, out = edge{f.box.X0, 0}, edge{f.box.X1, 0}
	case co < 0:
		in, out = edge{-f.box.X1, 180}, edge{-f.box.X0, 180}
	default:
		return near, far, f.box.X0 <= 0 && f.box.X1 >= 0 && nearT < farT
	}
	if t := in.dist(th); t > nearT {
		near, nearT = in, t
	}
	if t := out.dist(th); t < farT {
		far, farT = out, t
	}
	return near, far, nearT < farT
}

// pieceHits reports whether some bearing in [a, b] has near < r1 and
// far > r0. Both edges are monotone on the piece, so each condition holds on
// a prefix or a suffix of it.
func pieceHits(near, far edge, a, b, r0sq, r1sq float64) bool {
	nearA, nearB := near.dist2(a) < r1sq, near.dist2(b) < r1sq
	farA, farB := far.dist2(a) > r0sq, far.dist2(b) > r0sq
	if nearA && farA || nearB && farB {
		return true
	}
	r0, r1 := math.Sqrt(r0sq), math.Sqrt(r1sq)
	switch {
	case nearA && !nearB && !farA && farB:
		// The near edge recedes past r1 while the far edge comes out past r0.
		return far.crossing(a, b, r0) < near.crossing(a, b, r1)
	case !nearA && nearB && farA && !farB:
		return near.crossing(a, b, r1) < far.crossing(a, b, r0)
	}
	return false
}
