package icplace

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a placement shape.
type Kind uint8

const (
	KindEverywhere Kind = iota
	KindRectangle
	KindDisc
	KindAnnulus
	KindWedge
	KindRing
	KindSpatial
)

// Kinds lists every shape kind in display order.
var Kinds = [...]Kind{KindEverywhere, KindRectangle, KindDisc, KindAnnulus, KindWedge, KindRing, KindSpatial}

var kindNames = [...]string{
	KindEverywhere: "everywhere",
	KindRectangle:  "rectangle",
	KindDisc:       "disc",
	KindAnnulus:    "annulus",
	KindWedge:      "wedge",
	KindRing:       "ring",
	KindSpatial:    "spatial",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind named s, ignoring case. "box" is accepted as
// an alias for rectangle.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "box" {
		return KindRectangle, nil
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Shape is one of the placement brushes: [Everywhere], [Rectangle], [Disc],
// [Annulus], [Wedge], [Ring] or [Spatial]. Angles are in degrees.
type Shape interface {
	Kind() Kind
	// WellFormed reports whether the parameters describe a non-degenerate
	// shape. It does not look at the domain.
	WellFormed() bool
	// Contains reports whether pt lies in the closed shape.
	Contains(pt Point) bool
	// BoundingBox returns a rectangle enclosing the shape. It need not be tight.
	BoundingBox() Rect
	// Center returns the point a plain click moves.
	Center() Point
	// WithCenter returns a copy of the shape moved so that Center reports c.
	WithCenter(c Point) Shape

	isShape()
}

var (
	_ Shape = Everywhere{}
	_ Shape = Rectangle{}
	_ Shape = Disc{}
	_ Shape = Annulus{}
	_ Shape = Wedge{}
	_ Shape = Ring{}
	_ Shape = Spatial{}
)

// Everywhere fills the whole domain.
type Everywhere struct{}

func (Everywhere) Kind() Kind               { return KindEverywhere }
func (Everywhere) WellFormed() bool         { return true }
func (Everywhere) Contains(Point) bool      { return true }
func (Everywhere) Center() Point            { return Point{} }
func (e Everywhere) WithCenter(Point) Shape { return e }
func (Everywhere) isShape()                 {}

func (Everywhere) BoundingBox() Rect {
	inf := math.Inf(1)
	return Rect{X0: -inf, Y0: -inf, X1: inf, Y1: inf}
}

// Rectangle spans [X0, X0+Width]×[Y0, Y0+Height]. In a 3D domain it also
// spans [Z0, Z0+Depth].
type Rectangle struct {
	X0, Y0, Z0           float64
	Width, Height, Depth float64
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Rectangle) isShape()   {}

func (r Rectangle) WellFormed() bool {
	return r.Width >= 0 && r.Height >= 0 && r.Depth >= 0 && !r.Rect().IsNaN()
}

func (r Rectangle) Rect() Rect {
	return Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + r.Width, Y1: r.Y0 + r.Height}
}

func (r Rectangle) Contains(pt Point) bool { return r.Rect().Contains(pt) }
func (r Rectangle) BoundingBox() Rect      { return NewRectFromOrigin(Pt(r.X0, r.Y0), r.Width, r.Height) }
func (r Rectangle) Center() Point          { return r.Rect().Center() }

func (r Rectangle) WithCenter(c Point) Shape {
	r.X0 = c.X - r.Width/2
	r.Y0 = c.Y - r.Height/2
	return r
}

// Disc is the closed disc of radius R about (X0, Y0).
type Disc struct {
	X0, Y0 float64
	R      float64
}

func (Disc) Kind() Kind { return KindDisc }
func (Disc) isShape()   {}

func (c Disc) WellFormed() bool {
	return c.R >= 0 && !math.IsInf(c.R, 0) && finite(c.Center())
}

func (c Disc) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center()) <= c.R*c.R
}

func (c Disc) BoundingBox() Rect { return circleBox(c.Center(), c.R) }
func (c Disc) Center() Point     { return Pt(c.X0, c.Y0) }

func (c Disc) WithCenter(p Point) Shape {
	c.X0, c.Y0 = p.X, p.Y
	return c
}

// Annulus is the ring R0 ≤ |p − (X0, Y0)| ≤ R1.
type Annulus struct {
	X0, Y0 float64
	R0, R1 float64
}

func (Annulus) Kind() Kind { return KindAnnulus }
func (Annulus) isShape()   {}

func (a Annulus) WellFormed() bool {
	return radiiWellFormed(a.R0, a.R1) && finite(a.Center())
}

func (a Annulus) Contains(pt Point) bool {
	d2 := pt.DistanceSquared(a.Center())
	return d2 >= a.R0*a.R0 && d2 <= a.R1*a.R1
}

func (a Annulus) BoundingBox() Rect { return circleBox(a.Center(), a.R1) }
func (a Annulus) Center() Point     { return Pt(a.X0, a.Y0) }

func (a Annulus) WithCenter(p Point) Shape {
	a.X0, a.Y0 = p.X, p.Y
	return a
}

// Wedge is the sector of an annulus between the bearings Theta1 and Theta2,
// swept counter-clockwise. Equal bearings describe the whole annulus.
type Wedge struct {
	X0, Y0         float64
	R0, R1         float64
	Theta1, Theta2 float64
}

func (Wedge) Kind() Kind { return KindWedge }
func (Wedge) isShape()   {}

func (w Wedge) WellFormed() bool {
	return radiiWellFormed(w.R0, w.R1) &&
		finite(w.Center()) &&
		!math.IsNaN(w.Theta1) && !math.IsInf(w.Theta1, 0) &&
		!math.IsNaN(w.Theta2) && !math.IsInf(w.Theta2, 0)
}

func (w Wedge) Contains(pt Point) bool {
	if !w.Annulus().Contains(pt) {
		return false
	}
	if pt == w.Center() {
		return true
	}
	th1, th2 := NormalizeThetas(w.Theta1, w.Theta2)
	return bearingWithin(Angle(pt, w.Center()), th1, th2)
}

// Annulus returns the annulus the wedge is cut from.
func (w Wedge) Annulus() Annulus {
	return Annulus{X0: w.X0, Y0: w.Y0, R0: w.R0, R1: w.R1}
}

func (w Wedge) BoundingBox() Rect { return circleBox(w.Center(), w.R1) }
func (w Wedge) Center() Point     { return Pt(w.X0, w.Y0) }

func (w Wedge) WithCenter(p Point) Shape {
	w.X0, w.Y0 = p.X, p.Y
	return w
}

// Ring is the arc of radius R about (X0, Y0) between Theta1 and Theta2.
// Cells are placed along it; RMod keeps only every RMod-th slot.
type Ring struct {
	X0, Y0         float64
	R              float64
	Theta1, Theta2 float64
	RMod           int
}

func (Ring) Kind() Kind { return KindRing }
func (Ring) isShape()   {}

func (r Ring) WellFormed() bool {
	return r.R > 0 && !math.IsInf(r.R, 0) && r.RMod >= 1 &&
		finite(r.Center()) && !math.IsNaN(r.Theta1) && !math.IsNaN(r.Theta2)
}

// Contains reports whether pt lies on the arc, up to a relative tolerance of 1e-9.
func (r Ring) Contains(pt Point) bool {
	if math.Abs(pt.Distance(r.Center())-r.R) > 1e-9*max(1, r.R) {
		return false
	}
	th1, th2 := NormalizeThetas(r.Theta1, r.Theta2)
	return bearingWithin(Angle(pt, r.Center()), th1, th2)
}

// band returns a thin wedge around the arc.
func (r Ring) band() Wedge {
	eps := 1e-9 * max(1, r.R)
	return Wedge{X0: r.X0, Y0: r.Y0, R0: r.R - eps, R1: r.R + eps, Theta1: r.Theta1, Theta2: r.Theta2}
}

func (r Ring) BoundingBox() Rect { return circleBox(r.Center(), r.R) }
func (r Ring) Center() Point     { return Pt(r.X0, r.Y0) }

func (r Ring) WithCenter(p Point) Shape {
	r.X0, r.Y0 = p.X, p.Y
	return r
}

// Spatial maps a set of spot coordinates normalized to the unit square (or
// cube) onto the box at (X0, Y0, Z0) with the given extents.
type Spatial struct {
	X0, Y0, Z0           float64
	Width, Height, Depth float64
}

func (Spatial) Kind() Kind { return KindSpatial }
func (Spatial) isShape()   {}

func (s Spatial) WellFormed() bool {
	return s.Width >= 0 && s.Height >= 0 && s.Depth >= 0 && !s.Rect().IsNaN()
}

func (s Spatial) Rect() Rect {
	return Rect{X0: s.X0, Y0: s.Y0, X1: s.X0 + s.Width, Y1: s.Y0 + s.Height}
}

// Transform returns the map from normalized spot coordinates to domain coordinates.
func (s Spatial) Transform() Affine {
	return MapUnitSquare(s.Rect())
}

func (s Spatial) Contains(pt Point) bool { return s.Rect().Contains(pt) }
func (s Spatial) BoundingBox() Rect      { return NewRectFromOrigin(Pt(s.X0, s.Y0), s.Width, s.Height) }
func (s Spatial) Center() Point          { return s.Rect().Center() }

func (s Spatial) WithCenter(c Point) Shape {
	s.X0 = c.X - s.Width/2
	s.Y0 = c.Y - s.Height/2
	return s
}

func finite(pt Point) bool {
	return !pt.IsNaN() && !pt.IsInf()
}

func radiiWellFormed(r0, r1 float64) bool {
	return r0 >= 0 && r1 > r0 && !math.IsInf(r1, 0)
}

func circleBox(c Point, r float64) Rect {
	r = math.Abs(r)
	return Rect{X0: c.X - r, Y0: c.Y - r, X1: c.X + r, Y1: c.Y + r}
}
