package icplace

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipX), Pt(-3, 4), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(SwapXY), Pt(4, 3), epsilon)
}

func TestAffineReflectionsMapBearings(t *testing.T) {
	// Each reflection acts on bearings as documented on its variable.
	cases := []struct {
		name string
		aff  Affine
		want func(th float64) float64
	}{
		{"FlipX", FlipX, func(th float64) float64 { return 180 - th }},
		{"FlipY", FlipY, func(th float64) float64 { return -th }},
		{"SwapXY", SwapXY, func(th float64) float64 { return 90 - th }},
	}
	for _, tc := range cases {
		for th := -170.0; th < 180; th += 35 {
			v := VecFromBearing(th)
			got := Point(v).Transform(tc.aff)
			want := Point(VecFromBearing(tc.want(th)))
			assertNear(t, got, want, 1e-9)
		}
	}
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	aff := Translate(Vec(-1, -2)).Then(FlipX).Then(SwapXY)
	p := Pt(4, 7)
	assertNear(t, p.Transform(aff), Pt(4, 7).Transform(Translate(Vec(-1, -2))).Transform(FlipX).Transform(SwapXY), epsilon)
	assertNear(t, p.Transform(aff), Pt(5, -3), epsilon)
}

func TestMapUnitSquare(t *testing.T) {
	rect := Rect{X0: -20, Y0: 10, X1: 80, Y1: 60}
	aff := MapUnitSquare(rect)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(-20, 10), 1e-12)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(80, 60), 1e-12)
	assertNear(t, Pt(0.5, 0.5).Transform(aff), rect.Center(), 1e-12)
	diff(t, rect, aff.TransformRectBoundingBox(Rect{0, 0, 1, 1}), approx)
}
