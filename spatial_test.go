package icplace

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSpatialPointsMapping(t *testing.T) {
	s := Spatial{X0: -100, Y0: -50, Width: 200, Height: 100}
	spots := []Point3{{0, 0, 0}, {0.5, 0.5, 0}, {1, 1, 0}, {2, 0.5, 0}}
	pts, err := SpatialPoints(newRand(20), square, s, spots, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	// The last spot maps to x = 300 and is dropped.
	diff(t, []Point3{{-100, -50, 0}, {0, 0, 0}, {100, 50, 0}}, pts, approx)
}

func TestSpatialPoints3D(t *testing.T) {
	d := Domain{XMin: -100, XMax: 100, YMin: -100, YMax: 100, ZMin: -100, ZMax: 100, ZDel: 20}
	s := Spatial{X0: -100, Y0: -100, Z0: -100, Width: 200, Height: 200, Depth: 200}
	pts, err := SpatialPoints(newRand(21), d, s, []Point3{{0.5, 0.5, 0.25}}, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point3{{0, 0, -50}}, pts, approx)
}

func TestSpatialPoints3DClipsZ(t *testing.T) {
	d := Domain{XMin: -100, XMax: 100, YMin: -100, YMax: 100, ZMin: -100, ZMax: 100, ZDel: 20}
	// The box reaches 200 above the domain's top.
	s := Spatial{X0: -100, Y0: -100, Z0: 0, Width: 200, Height: 200, Depth: 300}
	spots := []Point3{{0.5, 0.5, 0.2}, {0.5, 0.5, 0.9}, {0.25, 0.25, 0.9}}
	for _, perSpot := range []int{1, 4} {
		pts, err := SpatialPoints(newRand(23), d, s, spots, perSpot, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(pts) != perSpot {
			t.Errorf("perSpot %d: got %d points, want %d", perSpot, len(pts), perSpot)
		}
		for _, p := range pts {
			if p.Z < d.ZMin || p.Z > d.ZMax {
				t.Errorf("perSpot %d: %v outside the domain's z span", perSpot, p)
			}
		}
	}
}

func TestSpatialPointsNoSpots(t *testing.T) {
	s := DefaultShape(square, KindSpatial, nil).(Spatial)
	if _, err := SpatialPoints(newRand(24), square, s, nil, 1, 5); !errors.Is(err, ErrNoSpots) {
		t.Errorf("got %v, want ErrNoSpots", err)
	}
}

func TestSpatialPointsPerSpot(t *testing.T) {
	s := DefaultShape(square, KindSpatial, nil).(Spatial)
	spots := []Point3{{0.25, 0.25, 0}, {0.75, 0.5, 0}, {5, 5, 0}}
	const perSpot, r = 7, 3.0
	pts, err := SpatialPoints(newRand(22), square, s, spots, perSpot, r)
	if err != nil {
		t.Fatal(err)
	}
	// The third spot is far outside the domain and yields nothing.
	if len(pts) != 2*perSpot {
		t.Fatalf("got %d points, want %d", len(pts), 2*perSpot)
	}
	foot := r * math.Sqrt(perSpot)
	centers := []Point{Pt(-50, -50), Pt(50, 0)}
	for i, p := range pts {
		c := centers[i/perSpot]
		if p.XY().Distance(c) > foot+1e-9 {
			t.Errorf("%v is %v from its spot %v, beyond %v", p, p.XY().Distance(c), c, foot)
		}
	}
}

func TestReadSpots(t *testing.T) {
	in := "x,y,z\n0.1,0.2,0.3\n 0.5, 0.5\n1,0,0,extra\n"
	spots, err := ReadSpots(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point3{{0.1, 0.2, 0.3}, {0.5, 0.5, 0}, {1, 0, 0}}, spots)
}

func TestReadSpotsErrors(t *testing.T) {
	for _, in := range []string{
		"0.1,0.2\nfoo,bar\n",
		"0.1\n",
	} {
		if _, err := ReadSpots(strings.NewReader(in)); err == nil {
			t.Errorf("ReadSpots(%q) should fail", in)
		}
	}
}
