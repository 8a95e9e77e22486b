package pix

// DefaultHistoryCapacity bounds each history stack when the caller does
// not choose a capacity.
const DefaultHistoryCapacity = 20

// entry pairs a snapshot with the name of the operation that replaced
// it, i.e. the operation that produced the state after this snapshot.
type entry struct {
	img   *Image
	label string
}

// History is a bounded two-stack undo/redo store of image snapshots.
//
// Pushing after a successful mutation clears the redo stack entirely:
// history is strictly linear with a single redo lineage, never a tree.
// Each stack holds at most Cap entries; pushing past capacity evicts the
// oldest (bottom) entry first.
//
// History is not safe for concurrent use; the engine's execution model
// is single-threaded apart from the cancellation token.
type History struct {
	cap  int
	undo []entry
	redo []entry
}

// NewHistory creates a history bounded to capacity entries per stack.
// Capacities < 1 fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{cap: capacity}
}

// Cap returns the per-stack capacity.
func (h *History) Cap() int { return h.cap }

// UndoLen returns the number of undoable states.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the number of redoable states.
func (h *History) RedoLen() int { return len(h.redo) }

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Push records snapshot as the state that label is about to replace (or
// just replaced). History takes ownership of snapshot; callers pass a
// clone, never the live image. The redo branch is invalidated.
func (h *History) Push(snapshot *Image, label string) {
	h.undo = push(h.undo, entry{img: snapshot, label: label}, h.cap)
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot into *cur, moving the current state
// onto the redo stack. It returns the label of the operation that was
// undone, and false if there is nothing to undo (cur untouched).
func (h *History) Undo(cur *Image) (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = push(h.redo, entry{img: cur.Clone(), label: e.label}, h.cap)
	*cur = *e.img
	return e.label, true
}

// Redo is the inverse of Undo: it pops the most recent redo snapshot
// into *cur and moves the current state back onto the undo stack. It
// returns the label of the operation that was reapplied, and false if
// there is nothing to redo.
func (h *History) Redo(cur *Image) (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = push(h.undo, entry{img: cur.Clone(), label: e.label}, h.cap)
	*cur = *e.img
	return e.label, true
}

// Clear empties both stacks. Used on fresh image load.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// push appends e to stack, evicting the bottom entry when the stack
// would exceed capacity.
func push(stack []entry, e entry, capacity int) []entry {
	stack = append(stack, e)
	if len(stack) > capacity {
		copy(stack, stack[1:])
		stack = stack[:len(stack)-1]
	}
	return stack
}
