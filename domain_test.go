package icplace

import (
	"errors"
	"math"
	"testing"
)

func TestDomainValidate(t *testing.T) {
	if err := square.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := []Domain{
		NewDomain2D(0, 0, -1, 1),
		NewDomain2D(1, -1, -1, 1),
		NewDomain2D(-1, 1, 5, 5),
		NewDomain2D(math.NaN(), 1, -1, 1),
		{XMin: -1, XMax: 1, YMin: -1, YMax: 1, ZMin: 10, ZMax: -10, ZDel: 20},
	}
	for _, d := range bad {
		if err := d.Validate(); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("%+v: got %v, want ErrInvalidDomain", d, err)
		}
	}
}

func TestDomainIs2D(t *testing.T) {
	if !square.Is2D() {
		t.Error("NewDomain2D should be flat")
	}
	d := square
	d.ZMin, d.ZMax = -100, 100
	if d.Is2D() {
		t.Error("domain 200 deep with 20 voxels should be 3D")
	}
}

func TestDomainDistances(t *testing.T) {
	tests := []struct {
		pt       Point
		dist2    float64
		farthest float64
	}{
		{Pt(0, 0), 0, 20000},
		{Pt(100, 100), 0, 80000},
		{Pt(150, 0), 2500, 72500},
		{Pt(150, 150), 5000, 125000},
		{Pt(-130, 40), 900, 230*230 + 140*140},
	}
	for _, tt := range tests {
		diff(t, tt.dist2, square.DistanceSquared(tt.pt), approx)
		diff(t, tt.farthest, square.CircumscribingRadiusSquared(tt.pt), approx)
	}
}

func TestDomainClamp(t *testing.T) {
	diff(t, Pt(100, -20), square.Clamp(Pt(300, -20)))
	diff(t, Pt(-100, 100), square.Clamp(Pt(-101, 101)))
	diff(t, Pt(3, 4), square.Clamp(Pt(3, 4)))
}

func TestDomainExitDistance(t *testing.T) {
	diff(t, 100.0, square.exitDistance(Pt(0, 0), Vec(1, 0)), approx)
	diff(t, 100*math.Sqrt2, square.exitDistance(Pt(0, 0), VecFromBearing(45)), approx)
	diff(t, 150.0, square.exitDistance(Pt(-50, 0), Vec(1, 0)), approx)
	diff(t, 0.0, square.exitDistance(Pt(100, 0), Vec(1, 0)), approx)
}
