package icplace

import (
	"errors"
	"math"
	"testing"
)

func TestValidShapes(t *testing.T) {
	tests := []struct {
		name  string
		d     Domain
		shape Shape
		want  bool
	}{
		{"disc at center", square, Disc{X0: 0, Y0: 0, R: 50}, true},
		{"disc outside", square, Disc{X0: 150, Y0: 0, R: 10}, false},
		{"disc tangent", square, Disc{X0: 150, Y0: 0, R: 50}, false},
		{"disc just reaching", square, Disc{X0: 150, Y0: 0, R: 50.001}, true},
		{"annulus about center", square, Annulus{X0: 0, Y0: 0, R0: 60, R1: 80}, true},
		{"annulus swallowing domain", square, Annulus{X0: 0, Y0: 0, R0: 150, R1: 200}, false},
		{"annulus hole on corner", square, Annulus{X0: 0, Y0: 0, R0: 141.43, R1: 200}, false},
		{"wedge pointing back", square, Wedge{X0: 150, Y0: 150, R0: 10, R1: 300, Theta1: 180, Theta2: 270}, true},
		{"wedge pointing away", square, Wedge{X0: 150, Y0: 150, R0: 10, R1: 300, Theta1: 0, Theta2: 90}, false},
		{"wedge too short", square, Wedge{X0: 150, Y0: 150, R0: 10, R1: 70, Theta1: 180, Theta2: 270}, false},
		{"everywhere", square, Everywhere{}, true},
		{"rectangle overlapping", square, Rectangle{X0: 50, Y0: 50, Width: 100, Height: 100}, true},
		{"rectangle sharing an edge", square, Rectangle{X0: 100, Y0: 0, Width: 10, Height: 10}, false},
		{"rectangle with negative width", square, Rectangle{X0: 150, Y0: 150, Width: -100, Height: -100}, false},
		{"spatial inside", square, Spatial{X0: -10, Y0: -10, Width: 20, Height: 20}, true},
		{"ring crossing", square, Ring{X0: 0, Y0: 0, R: 120, Theta1: 0, Theta2: 360, RMod: 1}, true},
		{"ring outside", square, Ring{X0: 0, Y0: 0, R: 150, Theta1: 0, Theta2: 360, RMod: 1}, false},
		{"ring arc away", square, Ring{X0: 0, Y0: 0, R: 120, Theta1: 10, Theta2: 30, RMod: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.d, tt.shape); got != tt.want {
				t.Errorf("Valid(%+v) = %t, want %t", tt.shape, got, tt.want)
			}
		})
	}
}

func TestCheckErrors(t *testing.T) {
	if err := Check(square, Annulus{R0: 10, R1: 10}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
	if err := Check(square, nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
	if err := Check(square, Disc{X0: 500, R: 1}); !errors.Is(err, ErrNoIntersection) {
		t.Errorf("got %v, want ErrNoIntersection", err)
	}
	if err := Check(square, Disc{X0: math.Inf(1), R: 1}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape for an infinite center", err)
	}
	if err := Check(square, Disc{R: 1}); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

// The annulus test matches its closed form everywhere.
func TestAnnulusValidity(t *testing.T) {
	rng := newRand(2)
	for range 5000 {
		c := Pt(-300+600*rng.Float64(), -300+600*rng.Float64())
		r0 := 300 * rng.Float64()
		r1 := r0 + 300*rng.Float64()
		if r1 == r0 {
			continue
		}
		a := Annulus{X0: c.X, Y0: c.Y, R0: r0, R1: r1}
		want := square.DistanceSquared(c) < r1*r1 && square.CircumscribingRadiusSquared(c) > r0*r0
		if got := Valid(square, a); got != want {
			t.Fatalf("Valid(%+v) = %t, want %t", a, got, want)
		}
	}
}

func TestDegenerateRadii(t *testing.T) {
	rng := newRand(3)
	for range 1000 {
		c := Pt(-200+400*rng.Float64(), -200+400*rng.Float64())
		r0 := 200 * rng.Float64()
		r1 := r0 * rng.Float64()
		if rng.IntN(4) == 0 {
			r1 = 0
		}
		th1, th2 := 360*rng.Float64(), 360*rng.Float64()
		for _, s := range []Shape{
			Annulus{X0: c.X, Y0: c.Y, R0: r0, R1: r1},
			Wedge{X0: c.X, Y0: c.Y, R0: r0, R1: r1, Theta1: th1, Theta2: th2},
		} {
			if Valid(square, s) {
				t.Fatalf("degenerate %+v reported valid", s)
			}
		}
	}
}

func TestRectangle3D(t *testing.T) {
	d := Domain{XMin: -100, XMax: 100, YMin: -100, YMax: 100, ZMin: -100, ZMax: 100, ZDel: 20}
	base := Rectangle{X0: -10, Y0: -10, Width: 20, Height: 20}

	inside := base
	inside.Z0, inside.Depth = -10, 20
	if !Valid(d, inside) {
		t.Error("rectangle inside the z span should be valid")
	}

	above := base
	above.Z0, above.Depth = 100, 20
	if Valid(d, above) {
		t.Error("rectangle above the domain should be invalid")
	}

	// The z span is ignored in a flat domain.
	if !Valid(square, above) {
		t.Error("z span should not matter in 2D")
	}
}
