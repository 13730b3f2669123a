package icplace

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// HexLattice yields the points of a triangular lattice covering box, starting
// at its lower left corner. Neighbouring points in a row are 2·r·spacing
// apart, rows are r·√3·spacing apart and every other row is shifted by
// r·spacing.
func HexLattice(box Rect, r, spacing float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r <= 0 || spacing <= 0 || box.IsNaN() {
			return
		}
		dx := 2 * r * spacing
		dy := math.Sqrt(3) * r * spacing
		for row := 0; ; row++ {
			y := box.Y0 + float64(row)*dy
			if y > box.Y1 {
				return
			}
			x0 := box.X0 + float64(row%2)*r*spacing
			for col := 0; ; col++ {
				x := x0 + float64(col)*dx
				if x > box.X1 {
					break
				}
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// HexPack packs cells of radius r onto a hexagonal lattice over s ∩ d. In a
// 3D domain lattice layers are stacked in hexagonal close packing. The result
// depends only on the arguments.
func HexPack(d Domain, s Shape, r, spacing float64) ([]Point3, error) {
	if r <= 0 || spacing <= 0 {
		return nil, errors.New("hex packing needs a positive cell radius and spacing")
	}
	if err := Check(d, s); err != nil {
		return nil, err
	}
	switch s.(type) {
	case Ring, Spatial:
		return nil, fmt.Errorf("hex packing does not apply to %v", s.Kind())
	}

	box := s.BoundingBox().Intersect(d.Rect())
	if d.Is2D() {
		var pts []Point3
		for p := range HexLattice(box, r, spacing) {
			if s.Contains(p) {
				pts = append(pts, p.At(0))
			}
		}
		return pts, nil
	}

	z0, z1 := d.ZMin, d.ZMax
	if rect, ok := s.(Rectangle); ok {
		z0, z1 = max(z0, rect.Z0), min(z1, rect.Z0+rect.Depth)
	}
	dz := 2 * r * spacing * math.Sqrt(6) / 3
	var pts []Point3
	for layer := 0; ; layer++ {
		z := z0 + float64(layer)*dz
		if z > z1 {
			break
		}
		// B layers sit over the centroids of the A layer's triangles.
		shift := float64(layer%2) * r * spacing
		off := Vec(shift, shift/math.Sqrt(3))
		layerBox := Rect{X0: box.X0 + off.X, Y0: box.Y0 + off.Y, X1: box.X1, Y1: box.Y1}
		for p := range HexLattice(layerBox, r, spacing) {
			if s.Contains(p) {
				pts = append(pts, p.At(z))
			}
		}
	}
	return pts, nil
}
