package pix

import "testing"

func solidImage(v uint8) *Image {
	m := NewImage(2, 2)
	m.Fill(RGB{v, v, v})
	return m
}

// TestHistory_UndoRedo verifies the basic push/undo/redo cycle with
// labels riding along.
func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(10)
	cur := solidImage(1)

	h.Push(cur.Clone(), "Invert")
	cur.Fill(RGB{2, 2, 2})

	label, ok := h.Undo(cur)
	if !ok || label != "Invert" {
		t.Fatalf("Undo = (%q, %v), want (Invert, true)", label, ok)
	}
	if !cur.Equal(solidImage(1)) {
		t.Error("undo did not restore the snapshot")
	}
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	label, ok = h.Redo(cur)
	if !ok || label != "Invert" {
		t.Fatalf("Redo = (%q, %v), want (Invert, true)", label, ok)
	}
	if !cur.Equal(solidImage(2)) {
		t.Error("redo did not restore the undone state")
	}
}

// TestHistory_EmptyStacks verifies Undo/Redo on empty stacks do nothing.
func TestHistory_EmptyStacks(t *testing.T) {
	h := NewHistory(3)
	cur := solidImage(5)

	if label, ok := h.Undo(cur); ok || label != "" {
		t.Errorf("Undo on empty = (%q, %v), want (\"\", false)", label, ok)
	}
	if label, ok := h.Redo(cur); ok || label != "" {
		t.Errorf("Redo on empty = (%q, %v), want (\"\", false)", label, ok)
	}
	if !cur.Equal(solidImage(5)) {
		t.Error("no-op undo/redo modified the current image")
	}
}

// TestHistory_PushClearsRedo verifies a new mutation invalidates the
// redo branch.
func TestHistory_PushClearsRedo(t *testing.T) {
	h := NewHistory(5)
	cur := solidImage(1)

	h.Push(cur.Clone(), "A")
	cur.Fill(RGB{2, 2, 2})
	h.Undo(cur)

	if h.RedoLen() != 1 {
		t.Fatalf("RedoLen() = %d, want 1", h.RedoLen())
	}
	h.Push(cur.Clone(), "B")
	if h.CanRedo() {
		t.Error("push did not clear the redo stack")
	}
}

// TestHistory_CapacityEviction verifies the oldest snapshot falls off
// the bottom when the stack is full.
func TestHistory_CapacityEviction(t *testing.T) {
	h := NewHistory(2)
	cur := solidImage(0)

	// Three mutations into a capacity-2 history: A's snapshot is evicted.
	h.Push(solidImage(1), "A")
	h.Push(solidImage(2), "B")
	h.Push(solidImage(3), "C")
	cur.Fill(RGB{4, 4, 4})

	if h.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2", h.UndoLen())
	}

	if label, _ := h.Undo(cur); label != "C" {
		t.Errorf("first undo label = %q, want C", label)
	}
	if !cur.Equal(solidImage(3)) {
		t.Error("first undo restored the wrong snapshot")
	}
	if label, _ := h.Undo(cur); label != "B" {
		t.Errorf("second undo label = %q, want B", label)
	}
	if !cur.Equal(solidImage(2)) {
		t.Error("second undo restored the wrong snapshot")
	}
	if h.CanUndo() {
		t.Error("evicted snapshot is still undoable")
	}
}

// TestHistory_Clear empties both stacks.
func TestHistory_Clear(t *testing.T) {
	h := NewHistory(4)
	cur := solidImage(1)
	h.Push(cur.Clone(), "A")
	cur.Fill(RGB{2, 2, 2})
	h.Undo(cur)
	h.Push(cur.Clone(), "B")

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear left entries behind")
	}
}

// TestNewHistory_DefaultCapacity verifies non-positive capacities fall
// back to the default.
func TestNewHistory_DefaultCapacity(t *testing.T) {
	if got := NewHistory(0).Cap(); got != DefaultHistoryCapacity {
		t.Errorf("Cap() = %d, want %d", got, DefaultHistoryCapacity)
	}
	if got := NewHistory(-3).Cap(); got != DefaultHistoryCapacity {
		t.Errorf("Cap() = %d, want %d", got, DefaultHistoryCapacity)
	}
	if got := NewHistory(7).Cap(); got != 7 {
		t.Errorf("Cap() = %d, want 7", got)
	}
}
