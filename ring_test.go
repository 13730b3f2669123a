package icplace

import (
	"math"
	"testing"
)

func TestRingPointsHalfCircle(t *testing.T) {
	d := NewDomain2D(-100, 100, -50, 150)
	ring := Ring{R: 100, Theta1: 0, Theta2: 180, RMod: 1}
	pts, err := RingPoints(d, ring, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Floor(math.Pi / RingSlot(100, 5))
	if got := float64(len(pts)); math.Abs(got-want) > 1 {
		t.Errorf("got %v points, want %v ± 1", got, want)
	}
	for _, p := range pts {
		if math.Abs(p.XY().Distance(Pt(0, 0))-100) > 1e-9 {
			t.Fatalf("%v is not on the ring", p)
		}
		if p.Y < d.YMin || p.Y > d.YMax {
			t.Fatalf("%v outside the domain", p)
		}
	}
	diff(t, Point3{X: 100}, pts[0], approx)
}

func TestRingPointsNeighbours(t *testing.T) {
	// Neighbouring cells on the ring just touch.
	pts, err := RingPoints(square, Ring{R: 50, Theta1: 0, Theta2: 360, RMod: 1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(pts); i++ {
		diff(t, 8.0, pts[i].XY().Distance(pts[i-1].XY()), approx)
	}
	// The full circle does not place its starting slot twice.
	if first, last := pts[0].XY(), pts[len(pts)-1].XY(); first.Distance(last) < 8-1e-9 {
		t.Errorf("first %v and last %v overlap", first, last)
	}
}

func TestRingPointsRMod(t *testing.T) {
	ring := Ring{R: 50, Theta1: 0, Theta2: 360, RMod: 1}
	all, err := RingPoints(square, ring, 4)
	if err != nil {
		t.Fatal(err)
	}
	ring.RMod = 3
	some, err := RingPoints(square, ring, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(all) / 3; len(some) < want || len(some) > want+1 {
		t.Errorf("rmod 3 kept %d of %d points", len(some), len(all))
	}
	diff(t, all[3], some[1], approx)
}

func TestRingPointsClipped(t *testing.T) {
	// Only the part of the circle inside the domain is populated.
	pts, err := RingPoints(square, Ring{X0: 100, R: 50, Theta1: 0, Theta2: 360, RMod: 1}, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		if p.X > 100 {
			t.Fatalf("%v outside the domain", p)
		}
	}
	if len(pts) == 0 {
		t.Fatal("no points")
	}
}

func TestRingPointsCellLargerThanRing(t *testing.T) {
	pts, err := RingPoints(square, Ring{R: 2, Theta1: 0, Theta2: 360, RMod: 1}, 5)
	if err != nil {
		t.Fatal(err)
	}
	// The slot is a half turn: two cells on opposite sides.
	if len(pts) != 2 {
		t.Errorf("got %d points, want 2", len(pts))
	}
}
