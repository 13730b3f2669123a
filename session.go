package icplace

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Method selects how a plot fills a shape.
type Method int

const (
	// Random draws cells uniformly from the shape.
	Random Method = iota
	// Hex packs cells on a hexagonal lattice.
	Hex
)

func (m Method) String() string {
	switch m {
	case Random:
		return "random"
	case Hex:
		return "hex"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts "random" and "hex"; the empty string is Random.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "", "random", "uniform":
		return Random, nil
	case "hex", "hexagonal":
		return Hex, nil
	}
	return 0, fmt.Errorf("unknown placement method %q", s)
}

// PlotRequest describes one plot action.
type PlotRequest struct {
	CellType string
	// Count is the number of cells for random placement.
	Count  int
	Method Method
	// Spacing scales the hex lattice pitch; zero means 1.
	Spacing float64
	// PerSpot is the number of cells each spot expands into for spatial shapes.
	PerSpot int
}

// Session holds the state of one placement session: the shape being edited
// for each kind with its history, and the cells placed so far. It is not
// safe for concurrent use.
type Session struct {
	Domain Domain
	// CellTypes maps each cell type name to its volume in cubic microns.
	CellTypes map[string]float64
	// Spots are normalized spot coordinates used by spatial shapes.
	Spots []Point3
	// Logger receives session events. Nil means slog.Default().
	Logger *slog.Logger

	rng        *rand.Rand
	kind       Kind
	live       Shape
	histories  [len(Kinds)]*History[Shape]
	edited     [len(Kinds)]bool
	placements Placements
}

// NewSession starts a session on a validated domain. Every kind starts from
// its [DefaultShape]; the active kind is rectangle.
func NewSession(d Domain, cellTypes map[string]float64, rng *rand.Rand) (*Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Session{Domain: d, CellTypes: cellTypes, rng: rng}
	for _, k := range Kinds {
		s.histories[k] = NewHistory(DefaultShape(d, k, nil))
	}
	s.kind = KindRectangle
	s.live = s.histories[s.kind].Current()
	return s, nil
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Session) Kind() Kind   { return s.kind }
func (s *Session) Shape() Shape { return s.live }

// History returns the confirmed shapes of kind k.
func (s *Session) History(k Kind) *History[Shape] { return s.histories[k] }

// SetKind makes k the active kind. A kind that was never edited is re-seeded
// around the center of the shape being left.
func (s *Session) SetKind(k Kind) {
	if k == s.kind {
		return
	}
	if !s.edited[k] {
		s.histories[k].Reset(DefaultShape(s.Domain, k, s.live))
	}
	s.kind = k
	s.live = s.histories[k].Current()
	s.logger().Debug("shape kind changed", "kind", k)
}

// SetShape replaces the live parameters without touching the history. It
// switches the active kind if needed.
func (s *Session) SetShape(sh Shape) {
	if sh.Kind() != s.kind {
		s.SetKind(sh.Kind())
	}
	s.live = sh
	s.logger().Debug("shape edited", "kind", sh.Kind(), "shape", fmt.Sprintf("%+v", sh), "valid", s.CanPlot())
}

// Commit records the live parameters in the active kind's history.
func (s *Session) Commit() {
	s.histories[s.kind].Record(s.live)
	s.edited[s.kind] = true
}

// Undo steps the active kind's history back and makes that entry live.
func (s *Session) Undo() Shape {
	s.live = s.histories[s.kind].Undo()
	return s.live
}

// Redo steps the active kind's history forward and makes that entry live.
func (s *Session) Redo() Shape {
	s.live = s.histories[s.kind].Redo()
	return s.live
}

// CanPlot reports whether the live shape may be plotted.
func (s *Session) CanPlot() bool {
	return Valid(s.Domain, s.live)
}

// Placements returns the cells placed so far.
func (s *Session) Placements() *Placements { return &s.placements }

// Plot fills the live shape with cells of one type and adds them as a batch.
func (s *Session) Plot(req PlotRequest) (Batch, error) {
	vol, ok := s.CellTypes[req.CellType]
	if !ok {
		return Batch{}, fmt.Errorf("%w: %q", ErrUnknownCellType, req.CellType)
	}
	if err := Check(s.Domain, s.live); err != nil {
		return Batch{}, err
	}
	r := CellRadius(vol)
	spacing := req.Spacing
	if spacing <= 0 {
		spacing = 1
	}

	var pts []Point3
	var err error
	switch sh := s.live.(type) {
	case Ring:
		pts, err = RingPoints(s.Domain, sh, r)
	case Spatial:
		pts, err = SpatialPoints(s.rng, s.Domain, sh, s.Spots, req.PerSpot, r)
	default:
		if req.Method == Hex {
			pts, err = HexPack(s.Domain, sh, r, spacing)
		} else {
			pts, err = SampleShape(s.rng, s.Domain, sh, req.Count)
		}
	}
	b := Batch{CellType: req.CellType, Shape: s.live, Points: pts}
	s.placements.Add(b)
	if err != nil {
		s.logger().Warn("plot incomplete", "cell_type", req.CellType, "kind", s.kind, "placed", len(pts), "err", err)
		return b, err
	}
	s.logger().Info("plotted cells", "cell_type", req.CellType, "kind", s.kind, "method", req.Method, "placed", len(pts))
	return b, nil
}

// UndoType removes the latest batch of cellType.
func (s *Session) UndoType(cellType string) bool {
	ok := s.placements.UndoType(cellType)
	s.logger().Info("undo cell type", "cell_type", cellType, "removed", ok)
	return ok
}

// UndoAll removes every placed cell.
func (s *Session) UndoAll() {
	s.placements.UndoAll()
	s.logger().Info("undo all placements")
}

// Save writes the placed cells to path and, on success, flushes them from
// the session.
func (s *Session) Save(path string, mode SaveMode, label TypeLabel) error {
	n := s.placements.Len()
	if err := Save(path, mode, s.placements.Batches(), label); err != nil {
		return err
	}
	s.placements.UndoAll()
	s.logger().Info("saved cell positions", "path", path, "cells", n)
	return nil
}
