package icplace

// Valid reports whether s is well formed and overlaps d with positive area.
// It is the "can I plot?" predicate.
func Valid(d Domain, s Shape) bool {
	return Check(d, s) == nil
}

// Check is like [Valid] but explains a negative answer with
// [ErrInvalidShape] or [ErrNoIntersection].
func Check(d Domain, s Shape) error {
	if s == nil || !s.WellFormed() {
		return ErrInvalidShape
	}
	if !Intersects(d, s) {
		return ErrNoIntersection
	}
	return nil
}

// Intersects reports whether a well-formed shape overlaps the domain with
// positive area. A ring only needs to touch the domain.
func Intersects(d Domain, s Shape) bool {
	switch s := s.(type) {
	case Everywhere:
		return true
	case Rectangle:
		if !d.Is2D() && !spanOverlaps(s.Z0, s.Depth, d.ZMin, d.ZMax) {
			return false
		}
		return s.Rect().Abs().Overlaps(d.Rect())
	case Disc:
		return d.DistanceSquared(s.Center()) < s.R*s.R
	case Annulus:
		return annulusReaches(d, s.Center(), s.R0, s.R1)
	case Wedge:
		return WedgeInDomain(d, s)
	case Ring:
		return WedgeInDomain(d, s.band())
	case Spatial:
		if !d.Is2D() && !spanOverlaps(s.Z0, s.Depth, d.ZMin, d.ZMax) {
			return false
		}
		return s.Rect().Abs().Overlaps(d.Rect())
	default:
		return false
	}
}

// annulusReaches reports whether some point of the domain lies strictly
// between the two circles: the outer circle reaches the domain and the inner
// one does not swallow it.
func annulusReaches(d Domain, c Point, r0, r1 float64) bool {
	return d.DistanceSquared(c) < r1*r1 && d.CircumscribingRadiusSquared(c) > r0*r0
}

func spanOverlaps(z0, depth, zmin, zmax float64) bool {
	return z0 < zmax && z0+depth > zmin
}
