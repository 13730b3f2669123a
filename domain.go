package icplace

import (
	"fmt"
	"math"
)

// Domain is the simulation bounding box. It is fixed for a placement session.
//
// The domain is two-dimensional when its z extent does not exceed one voxel,
// that is when ZMax − ZMin ≤ ZDel.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	ZDel       float64
}

// NewDomain2D returns a flat domain spanning [xmin, xmax]×[ymin, ymax] in the z = 0 plane.
func NewDomain2D(xmin, xmax, ymin, ymax float64) Domain {
	return Domain{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		ZMin: -10, ZMax: 10, ZDel: 20,
	}
}

// Validate reports whether the x and y extents are non-empty.
func (d Domain) Validate() error {
	switch {
	case math.IsNaN(d.XMin) || math.IsNaN(d.XMax) || math.IsNaN(d.YMin) || math.IsNaN(d.YMax):
		return fmt.Errorf("%w: NaN bound", ErrInvalidDomain)
	case d.XMax <= d.XMin:
		return fmt.Errorf("%w: xmax %g <= xmin %g", ErrInvalidDomain, d.XMax, d.XMin)
	case d.YMax <= d.YMin:
		return fmt.Errorf("%w: ymax %g <= ymin %g", ErrInvalidDomain, d.YMax, d.YMin)
	case d.ZMax < d.ZMin:
		return fmt.Errorf("%w: zmax %g < zmin %g", ErrInvalidDomain, d.ZMax, d.ZMin)
	}
	return nil
}

func (d Domain) Is2D() bool {
	return d.ZMax-d.ZMin <= d.ZDel
}

// Rect returns the xy footprint of the domain.
func (d Domain) Rect() Rect {
	return Rect{X0: d.XMin, Y0: d.YMin, X1: d.XMax, Y1: d.YMax}
}

func (d Domain) Width() float64  { return d.XMax - d.XMin }
func (d Domain) Height() float64 { return d.YMax - d.YMin }
func (d Domain) Depth() float64  { return d.ZMax - d.ZMin }

func (d Domain) Center() Point {
	return d.Rect().Center()
}

// Contains reports whether pt lies in the closed xy footprint.
func (d Domain) Contains(pt Point) bool {
	return d.Rect().Contains(pt)
}

// Clamp returns the point of the domain closest to pt.
func (d Domain) Clamp(pt Point) Point {
	return Point{
		X: min(max(pt.X, d.XMin), d.XMax),
		Y: min(max(pt.Y, d.YMin), d.YMax),
	}
}

// DistanceSquared returns the squared distance from pt to the nearest point of
// the domain. It is zero when pt is inside.
func (d Domain) DistanceSquared(pt Point) float64 {
	return pt.DistanceSquared(d.Clamp(pt))
}

// CircumscribingRadiusSquared returns the squared distance from pt to the
// farthest point of the domain. On each axis that is whichever edge is
// farther from pt.
func (d Domain) CircumscribingRadiusSquared(pt Point) float64 {
	fx := max(math.Abs(pt.X-d.XMin), math.Abs(pt.X-d.XMax))
	fy := max(math.Abs(pt.Y-d.YMin), math.Abs(pt.Y-d.YMax))
	return fx*fx + fy*fy
}

// exitDistance returns how far a ray from pt, which must be inside the
// domain, travels along the unit direction u before leaving it.
func (d Domain) exitDistance(pt Point, u Vec2) float64 {
	t := math.Inf(1)
	switch {
	case u.X > 0:
		t = min(t, (d.XMax-pt.X)/u.X)
	case u.X < 0:
		t = min(t, (d.XMin-pt.X)/u.X)
	}
	switch {
	case u.Y > 0:
		t = min(t, (d.YMax-pt.Y)/u.Y)
	case u.Y < 0:
		t = min(t, (d.YMin-pt.Y)/u.Y)
	}
	return max(t, 0)
}
