package icplace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// SpatialPoints maps normalized spot coordinates into the domain through s.
//
// With perSpot ≤ 1 every spot that lands in the domain yields one cell. In a
// 3D domain spots mapped above or below the domain are dropped as well.
// There must be at least one spot, otherwise the error wraps [ErrNoSpots].
// Otherwise each spot is expanded into perSpot cells drawn uniformly from the
// disc of radius r·√perSpot about it, which is roughly the footprint of
// perSpot cells of radius r; spots whose footprint misses the domain are
// skipped.
func SpatialPoints(rng *rand.Rand, d Domain, s Spatial, spots []Point3, perSpot int, r float64) ([]Point3, error) {
	if err := Check(d, s); err != nil {
		return nil, err
	}
	if len(spots) == 0 {
		return nil, fmt.Errorf("%w: spatial placement needs a spot layout", ErrNoSpots)
	}
	aff := s.Transform()
	var pts []Point3
	for _, spot := range spots {
		c := spot.XY().Transform(aff)
		var z float64
		if !d.Is2D() {
			z = s.Z0 + spot.Z*s.Depth
			if z < d.ZMin || z > d.ZMax {
				continue
			}
		}
		if perSpot <= 1 {
			if d.Contains(c) {
				pts = append(pts, c.At(z))
			}
			continue
		}
		if r <= 0 {
			return pts, errors.New("spot expansion needs a positive cell radius")
		}
		foot := r * math.Sqrt(float64(perSpot))
		if d.DistanceSquared(c) >= foot*foot {
			continue
		}
		cells, err := sampleSector(rng, d, c, 0, foot, 0, 2*math.Pi, perSpot)
		for _, p := range cells {
			pts = append(pts, p.At(z))
		}
		if err != nil {
			return pts, err
		}
	}
	return pts, nil
}

// ReadSpots parses normalized spot coordinates, one "x,y" or "x,y,z" row per
// spot. A first row that does not parse as numbers is taken as a header.
func ReadSpots(r io.Reader) ([]Point3, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var spots []Point3
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return spots, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("spots line %d: want at least 2 columns, got %d", line, len(rec))
		}
		var v [3]float64
		for i := 0; i < len(rec) && i < 3; i++ {
			v[i], err = strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				break
			}
		}
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("spots line %d: %w", line, err)
		}
		spots = append(spots, Point3{X: v[0], Y: v[1], Z: v[2]})
	}
}
