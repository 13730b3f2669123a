package icplace

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MaxProposals is the number of candidate draws per requested point after
// which rejection sampling gives up with [ErrSamplingStalled].
const MaxProposals = 10000

// CellRadius returns the radius of the sphere of the given volume. Volumes
// are in cubic microns.
func CellRadius(volume float64) float64 {
	return math.Cbrt(0.75 * volume / math.Pi)
}

// ConstrainRectangle clips r to the domain. In a 2D domain the z extent is
// left alone.
func ConstrainRectangle(d Domain, r Rectangle) Rectangle {
	box := r.Rect().Abs().Intersect(d.Rect())
	out := Rectangle{X0: box.X0, Y0: box.Y0, Z0: r.Z0, Width: box.Width(), Height: box.Height(), Depth: r.Depth}
	if !d.Is2D() {
		z0 := max(r.Z0, d.ZMin)
		z1 := min(r.Z0+r.Depth, d.ZMax)
		out.Z0, out.Depth = z0, max(z1-z0, 0)
	}
	return out
}

// SampleRectangle draws n points uniformly from r clipped to the domain.
func SampleRectangle(rng *rand.Rand, d Domain, r Rectangle, n int) []Point3 {
	r = ConstrainRectangle(d, r)
	pts := make([]Point3, 0, max(n, 0))
	for range n {
		p := Point3{
			X: r.X0 + r.Width*rng.Float64(),
			Y: r.Y0 + r.Height*rng.Float64(),
		}
		if !d.Is2D() {
			p.Z = r.Z0 + r.Depth*rng.Float64()
		}
		pts = append(pts, p)
	}
	return pts
}

// SampleWedge draws n points uniformly from the annular sector about c with
// radii r0 ≤ r1 and bearings [lo, hi] in radians, keeping only points inside
// the domain. Proposals are area-uniform over the sector, so the acceptance
// rate is the fraction of the sector that lies in the domain.
//
// In a 3D domain z is uniform over the domain's depth.
//
// If fewer than n points are accepted within n·[MaxProposals] draws, the
// points found so far are returned together with [ErrSamplingStalled].
func SampleWedge(rng *rand.Rand, d Domain, c Point, r0, r1, lo, hi float64, n int) ([]Point3, error) {
	xy, err := sampleSector(rng, d, c, r0, r1, lo, hi, n)
	pts := make([]Point3, len(xy))
	for i, p := range xy {
		pts[i] = p.At(0)
		if !d.Is2D() {
			pts[i].Z = d.ZMin + d.Depth()*rng.Float64()
		}
	}
	return pts, err
}

func sampleSector(rng *rand.Rand, d Domain, c Point, r0, r1, lo, hi float64, n int) ([]Point, error) {
	pts := make([]Point, 0, max(n, 0))
	r0sq := r0 * r0
	span := r1*r1 - r0sq
	budget := n * MaxProposals
	for proposals := 0; len(pts) < n; proposals++ {
		if proposals >= budget {
			return pts, fmt.Errorf("%w: %d of %d points after %d draws", ErrSamplingStalled, len(pts), n, proposals)
		}
		dist := math.Sqrt(r0sq + span*rng.Float64())
		th := lo + (hi-lo)*rng.Float64()
		p := c.Translate(VecFromAngle(th).Mul(dist))
		if d.Contains(p) {
			pts = append(pts, p)
		}
	}
	return pts, nil
}

// SampleShape draws n points uniformly from s ∩ d. The shape must be valid
// for the domain; rings and spatial layouts are placed with [RingPoints] and
// [SpatialPoints] instead.
func SampleShape(rng *rand.Rand, d Domain, s Shape, n int) ([]Point3, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if err := Check(d, s); err != nil {
		return nil, err
	}
	switch s := s.(type) {
	case Everywhere:
		r := Rectangle{X0: d.XMin, Y0: d.YMin, Z0: d.ZMin, Width: d.Width(), Height: d.Height(), Depth: d.Depth()}
		return SampleRectangle(rng, d, r, n), nil
	case Rectangle:
		return SampleRectangle(rng, d, s, n), nil
	case Disc:
		return SampleWedge(rng, d, s.Center(), 0, s.R, 0, 2*math.Pi, n)
	case Annulus:
		return SampleWedge(rng, d, s.Center(), s.R0, s.R1, 0, 2*math.Pi, n)
	case Wedge:
		th1, th2 := NormalizeThetas(s.Theta1, s.Theta2)
		return SampleWedge(rng, d, s.Center(), s.R0, s.R1, radians(th1), radians(th2), n)
	default:
		return nil, fmt.Errorf("random placement does not apply to %v", s.Kind())
	}
}
