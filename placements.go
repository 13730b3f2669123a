package icplace

import "slices"

// Batch is the set of cells one plot action placed.
type Batch struct {
	CellType string
	Shape    Shape
	Points   []Point3
}

// Placements accumulates plotted cells for a session, in plot order.
type Placements struct {
	batches []Batch
}

// Add appends a batch. Empty batches are dropped.
func (p *Placements) Add(b Batch) {
	if len(b.Points) == 0 {
		return
	}
	p.batches = append(p.batches, b)
}

// UndoType removes the most recent batch of the given cell type and reports
// whether there was one.
func (p *Placements) UndoType(cellType string) bool {
	for i := len(p.batches) - 1; i >= 0; i-- {
		if p.batches[i].CellType == cellType {
			p.batches = slices.Delete(p.batches, i, i+1)
			return true
		}
	}
	return false
}

// RemoveType removes every batch of the given cell type and returns how many
// cells were removed.
func (p *Placements) RemoveType(cellType string) int {
	n := 0
	kept := p.batches[:0]
	for _, b := range p.batches {
		if b.CellType == cellType {
			n += len(b.Points)
			continue
		}
		kept = append(kept, b)
	}
	clear(p.batches[len(kept):])
	p.batches = kept
	return n
}

// UndoAll removes every batch.
func (p *Placements) UndoAll() {
	p.batches = nil
}

func (p *Placements) Batches() []Batch { return p.batches }

// Len returns the number of placed cells.
func (p *Placements) Len() int {
	n := 0
	for _, b := range p.batches {
		n += len(b.Points)
	}
	return n
}

// Count returns the number of placed cells of one type.
func (p *Placements) Count(cellType string) int {
	n := 0
	for _, b := range p.batches {
		if b.CellType == cellType {
			n += len(b.Points)
		}
	}
	return n
}
