package icplace

import (
	"errors"
	"math"
)

// RingSlot returns the angle, in radians, between neighbouring cells of
// radius r placed on a circle of radius R so that they touch.
func RingSlot(R, r float64) float64 {
	return 2 * math.Asin(min(r/R, 1))
}

// RingPoints places cells of radius r along the arc, one every
// RMod·[RingSlot] radians starting at Theta1, and drops those outside the
// domain. A full circle does not repeat its starting slot.
func RingPoints(d Domain, ring Ring, r float64) ([]Point3, error) {
	if r <= 0 {
		return nil, errors.New("ring placement needs a positive cell radius")
	}
	if err := Check(d, ring); err != nil {
		return nil, err
	}
	th1, th2 := NormalizeThetas(ring.Theta1, ring.Theta2)
	sweep := radians(th2 - th1)
	stride := float64(ring.RMod) * RingSlot(ring.R, r)

	var slots int
	if th2-th1 >= 360-angleEpsilon {
		slots = max(int(math.Floor(2*math.Pi/stride+1e-9)), 1)
	} else {
		slots = int(math.Floor(sweep/stride+1e-9)) + 1
	}

	var z float64
	if !d.Is2D() {
		z = min(max(0, d.ZMin), d.ZMax)
	}
	c := ring.Center()
	pts := make([]Point3, 0, slots)
	for i := range slots {
		p := c.Translate(VecFromAngle(radians(th1) + float64(i)*stride).Mul(ring.R))
		if d.Contains(p) {
			pts = append(pts, p.At(z))
		}
	}
	return pts, nil
}
