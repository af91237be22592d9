package editor

// DefaultHistoryCap is the history capacity used when none is configured.
const DefaultHistoryCap = 20

// History is the past/future pair of frame stacks behind undo and redo.
//
// The top of past is the most recent boundary; the top of future is the
// most recently undone frame. History never touches a Renderer.
type History struct {
	past   []*Frame
	future []*Frame
	cap    int

	// trimPast drops the oldest past entry once past exceeds cap.
	trimPast bool
}

// NewHistory creates an empty history. A capacity <= 0 selects DefaultHistoryCap.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity}
}

// WithPastLimit makes RecordBoundary keep at most Cap() past entries,
// discarding the oldest. It returns h for chaining.
func (h *History) WithPastLimit() *History {
	h.trimPast = true
	return h
}

// RecordBoundary pushes f onto past and discards all redo state.
//
// The capacity check looks at future, which is cleared on the next line,
// so it never limits anything; past is unbounded unless WithPastLimit was
// used.
func (h *History) RecordBoundary(f *Frame) {
	h.past = append(h.past, f)
	if h.trimPast && len(h.past) > h.cap {
		excess := len(h.past) - h.cap
		h.past = h.past[excess:]
	}
	if len(h.future) > h.cap {
		h.future = h.future[1:]
	}
	h.future = nil
}

// Undo moves the top of past onto future and returns it.
// It returns (nil, false) and changes nothing when past is empty.
func (h *History) Undo() (*Frame, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, last)
	return last, true
}

// Redo moves the top of future onto past and returns it.
// It returns (nil, false) and changes nothing when future is empty.
func (h *History) Redo() (*Frame, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	last := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, last)
	return last, true
}

// CanUndo reports whether past is non-empty.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether future is non-empty.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// PastLen returns the number of undoable boundaries.
func (h *History) PastLen() int { return len(h.past) }

// FutureLen returns the number of redoable boundaries.
func (h *History) FutureLen() int { return len(h.future) }

// Cap returns the configured capacity.
func (h *History) Cap() int { return h.cap }

// Clear drops both stacks.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
