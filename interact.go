package icplace

// Modifiers is the set of modifier keys held during a pointer press.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Role is the group of shape parameters a press writes.
type Role int

const (
	// RoleMove moves the shape: the center, or the anchor corner of boxes.
	RoleMove Role = iota
	// RoleOuter sets the outer radius (and Theta1 for wedges and rings), or
	// the corner opposite the anchor for boxes.
	RoleOuter
	// RoleInner sets the inner radius (and Theta2 for wedges, Theta2 alone for
	// rings), or recenters boxes.
	RoleInner
)

// RoleFor maps modifiers to a role: a plain press moves, shift sets the outer
// parameters and ctrl or alt the inner ones. Shift wins over the others.
func RoleFor(m Modifiers) Role {
	switch {
	case m&ModShift != 0:
		return RoleOuter
	case m&(ModCtrl|ModAlt) != 0:
		return RoleInner
	}
	return RoleMove
}

// Edit returns s with the parameters of role set from the pointer position pt.
func Edit(s Shape, role Role, pt Point) Shape {
	if role == RoleMove {
		switch s := s.(type) {
		case Rectangle:
			s.X0, s.Y0 = pt.X, pt.Y
			return s
		case Spatial:
			s.X0, s.Y0 = pt.X, pt.Y
			return s
		}
		return s.WithCenter(pt)
	}

	switch s := s.(type) {
	case Rectangle:
		if role == RoleInner {
			return s.WithCenter(pt)
		}
		box := NewRectFromPoints(Pt(s.X0, s.Y0), pt)
		s.X0, s.Y0, s.Width, s.Height = box.X0, box.Y0, box.Width(), box.Height()
		return s
	case Spatial:
		if role == RoleInner {
			return s.WithCenter(pt)
		}
		box := NewRectFromPoints(Pt(s.X0, s.Y0), pt)
		s.X0, s.Y0, s.Width, s.Height = box.X0, box.Y0, box.Width(), box.Height()
		return s
	case Disc:
		s.R = Radius(pt, s.Center())
		return s
	case Annulus:
		if role == RoleOuter {
			s.R1 = Radius(pt, s.Center())
		} else {
			s.R0 = Radius(pt, s.Center())
		}
		return s
	case Wedge:
		if role == RoleOuter {
			s.R1, s.Theta1 = Radius(pt, s.Center()), Angle(pt, s.Center())
		} else {
			s.R0, s.Theta2 = Radius(pt, s.Center()), Angle(pt, s.Center())
		}
		return s
	case Ring:
		if role == RoleOuter {
			s.R, s.Theta1 = Radius(pt, s.Center()), Angle(pt, s.Center())
		} else {
			s.Theta2 = Angle(pt, s.Center())
		}
		return s
	}
	return s
}

// Key is a keyboard command understood by the [Controller].
type Key int

const (
	KeyUndo Key = iota
	KeyRedo
	// KeyEscape abandons the drag in progress.
	KeyEscape
)

// Controller turns pointer and key events into edits of a session's live
// shape. A press starts a drag, motion keeps updating the same parameters
// from the shape as it was at the press, and the release commits the result
// to the history exactly once.
type Controller struct {
	Session *Session
	// OnChange, if set, is called after every change to the live shape with
	// the shape and whether it may be plotted.
	OnChange func(s Shape, valid bool)

	dragging bool
	role     Role
	before   Shape
}

func NewController(s *Session) *Controller {
	return &Controller{Session: s}
}

// Dragging reports whether a press is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) PointerDown(pt Point, mods Modifiers) {
	if c.dragging {
		c.PointerMove(pt)
		return
	}
	c.dragging = true
	c.role = RoleFor(mods)
	c.before = c.Session.Shape()
	c.update(pt)
}

func (c *Controller) PointerMove(pt Point) {
	if !c.dragging {
		return
	}
	c.update(pt)
}

func (c *Controller) PointerUp(pt Point) {
	if !c.dragging {
		return
	}
	c.update(pt)
	c.dragging = false
	c.before = nil
	c.Session.Commit()
}

func (c *Controller) KeyPress(k Key) {
	switch k {
	case KeyEscape:
		if !c.dragging {
			return
		}
		c.Session.SetShape(c.before)
		c.dragging = false
		c.before = nil
	case KeyUndo:
		if c.dragging {
			return
		}
		c.Session.Undo()
	case KeyRedo:
		if c.dragging {
			return
		}
		c.Session.Redo()
	default:
		return
	}
	c.notify()
}

func (c *Controller) update(pt Point) {
	c.Session.SetShape(Edit(c.before, c.role, pt))
	c.notify()
}

func (c *Controller) notify() {
	if c.OnChange != nil {
		c.OnChange(c.Session.Shape(), c.Session.CanPlot())
	}
}
