package icplace

import "testing"

func TestHistoryTruncatesRedo(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for k := 0; k <= n; k++ {
			h := NewHistory(0)
			for i := 1; i <= n; i++ {
				h.Record(i)
			}
			for range k {
				h.Undo()
			}
			h.Record(-1)
			// Counting the initial entry, n+1 entries shrink to n-k+1 plus the new one.
			if got, want := h.Len(), n-k+2; got != want {
				t.Errorf("n=%d k=%d: got length %d, want %d", n, k, got, want)
			}
			if h.CanRedo() {
				t.Errorf("n=%d k=%d: redo available after recording", n, k)
			}
			if got := h.Redo(); got != -1 {
				t.Errorf("n=%d k=%d: redo brought back %d", n, k, got)
			}
		}
	}
}

func TestHistoryBounds(t *testing.T) {
	h := NewHistory("a")
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history should have nothing to undo or redo")
	}
	diff(t, "a", h.Undo())
	h.Record("b")
	h.Record("c")
	diff(t, "b", h.Undo())
	diff(t, "a", h.Undo())
	diff(t, "a", h.Undo())
	diff(t, 0, h.Index())
	diff(t, "b", h.Redo())
	diff(t, "c", h.Redo())
	diff(t, "c", h.Redo())
	diff(t, "c", h.Current())
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(1)
	h.Record(2)
	h.Record(3)
	h.Reset(7)
	diff(t, 1, h.Len())
	diff(t, 7, h.Current())
	if h.CanUndo() {
		t.Error("reset history should have nothing to undo")
	}
}
