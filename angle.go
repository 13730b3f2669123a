package icplace

import "math"

// angleEpsilon is the tolerance, in degrees, below which a span counts as a full turn.
const angleEpsilon = 1e-9

// Radius returns the distance from center to pt. It is what a radius drag
// writes into the shape.
func Radius(pt, center Point) float64 {
	return pt.Distance(center)
}

// Angle returns the bearing of pt as seen from center, in degrees in (-180, 180].
func Angle(pt, center Point) float64 {
	return pt.Sub(center).Bearing()
}

// NormalizeThetas brings an angular span into canonical form: th1 in
// [-180, 180) and th2 in (th1, th1+360]. Equal angles denote a full turn.
//
// NormalizeThetas is idempotent.
func NormalizeThetas(th1, th2 float64) (float64, float64) {
	n1 := th1 - 360*math.Floor((th1+180)/360)
	if n1 >= 180 {
		n1 -= 360
	}
	sweep := math.Mod(th2-th1, 360)
	if sweep <= angleEpsilon {
		// Spans that round to zero are full turns; this also absorbs the
		// rounding of n1+360-n1 on a second pass.
		sweep += 360
	}
	return n1, n1 + min(sweep, 360)
}

// Sweep returns the angular extent of the span [th1, th2] after normalization.
func Sweep(th1, th2 float64) float64 {
	n1, n2 := NormalizeThetas(th1, th2)
	return n2 - n1
}

// bearingWithin reports whether the bearing b lies in the normalized span
// [th1, th2].
func bearingWithin(b, th1, th2 float64) bool {
	b -= 360 * math.Floor((b-th1)/360)
	return b <= th2
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
