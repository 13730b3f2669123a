package icplace

// DefaultShape returns a starting shape of kind k for the domain. If prior is
// non-nil its center, pulled into the domain, is reused; otherwise the shape
// is centered on the domain.
func DefaultShape(d Domain, k Kind, prior Shape) Shape {
	c := d.Center()
	if prior != nil && prior.Kind() != KindEverywhere {
		c = d.Clamp(prior.Center())
	}

	// Radius of the largest disc about c that stays in the domain, shrunk a little.
	r := 0.9 * min(c.X-d.XMin, d.XMax-c.X, c.Y-d.YMin, d.YMax-c.Y)
	if r <= 0 {
		// c sits on an edge; fall back to a disc sized by the domain.
		r = 0.25 * min(d.Width(), d.Height())
	}

	switch k {
	case KindRectangle:
		w, h := 0.5*d.Width(), 0.5*d.Height()
		rect := Rectangle{
			X0:    clampSpan(c.X-0.5*w, w, d.XMin, d.XMax),
			Y0:    clampSpan(c.Y-0.5*h, h, d.YMin, d.YMax),
			Width: w, Height: h,
		}
		if !d.Is2D() {
			rect.Depth = 0.5 * d.Depth()
			rect.Z0 = d.ZMin + 0.25*d.Depth()
		}
		return rect
	case KindDisc:
		return Disc{X0: c.X, Y0: c.Y, R: r}
	case KindAnnulus:
		return Annulus{X0: c.X, Y0: c.Y, R0: 0.5 * r, R1: r}
	case KindWedge:
		return Wedge{X0: c.X, Y0: c.Y, R0: 0.5 * r, R1: r, Theta1: 0, Theta2: 270}
	case KindRing:
		return Ring{X0: c.X, Y0: c.Y, R: r, Theta1: 0, Theta2: 360, RMod: 1}
	case KindSpatial:
		s := Spatial{X0: d.XMin, Y0: d.YMin, Width: d.Width(), Height: d.Height()}
		if !d.Is2D() {
			s.Z0, s.Depth = d.ZMin, d.Depth()
		}
		return s
	default:
		return Everywhere{}
	}
}

// clampSpan shifts the interval [x0, x0+w] into [lo, hi] when it fits.
func clampSpan(x0, w, lo, hi float64) float64 {
	return max(lo, min(x0, hi-w))
}
