package icplace

// History is a linear undo/redo stack of confirmed values. It always holds at
// least one entry, and recording while not at the newest entry discards the
// entries after the current one.
type History[T any] struct {
	entries []T
	idx     int
}

// NewHistory returns a history whose only entry is initial.
func NewHistory[T any](initial T) *History[T] {
	return &History[T]{entries: []T{initial}}
}

// Record appends v after the current entry and makes it current.
func (h *History[T]) Record(v T) {
	h.entries = append(h.entries[:h.idx+1], v)
	h.idx = len(h.entries) - 1
}

// Undo steps back one entry, stopping at the oldest, and returns the new
// current entry.
func (h *History[T]) Undo() T {
	h.idx = max(0, h.idx-1)
	return h.entries[h.idx]
}

// Redo steps forward one entry, stopping at the newest, and returns the new
// current entry.
func (h *History[T]) Redo() T {
	h.idx = min(len(h.entries)-1, h.idx+1)
	return h.entries[h.idx]
}

// Reset discards every entry and starts over from v.
func (h *History[T]) Reset(v T) {
	clear(h.entries)
	h.entries = append(h.entries[:0], v)
	h.idx = 0
}

func (h *History[T]) Current() T    { return h.entries[h.idx] }
func (h *History[T]) Len() int      { return len(h.entries) }
func (h *History[T]) Index() int    { return h.idx }
func (h *History[T]) CanUndo() bool { return h.idx > 0 }
func (h *History[T]) CanRedo() bool { return h.idx < len(h.entries)-1 }
