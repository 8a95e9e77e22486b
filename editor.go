package pix

import (
	"errors"
	"fmt"
)

// ErrNoImage is returned by editor operations that need a loaded image.
var ErrNoImage = errors.New("pix: no image loaded")

// Editor is the harness that ties the filter engine to the history
// manager and the cancellation token. It owns the current image: filters
// mutate it through Apply/ApplyCancelable, which snapshot around every
// mutation so a failed or cancelled operation leaves the image exactly
// as it was.
//
// All methods run on the caller's goroutine; only Cancel is safe to call
// concurrently.
type Editor struct {
	img      *Image
	original *Image
	history  *History
	runner   Runner
	tok      Token
	path     string
}

// NewEditor creates an editor with no image loaded.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{
		history: NewHistory(o.historyCapacity),
		runner: Runner{
			Progress: o.progress,
			Interval: o.progressInterval,
		},
	}
}

// Load reads an image from path and makes it current, clearing history.
// On failure the previous image, if any, remains current.
func (e *Editor) Load(path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	e.img = img
	e.original = img.Clone()
	e.path = path
	e.history.Clear()
	Logger().Info("image loaded", "path", path, "width", img.Width(), "height", img.Height())
	return nil
}

// SetImage makes img the current image (for example a buffer handed
// over by a capture collaborator), clearing history. The editor takes
// ownership of img.
func (e *Editor) SetImage(img *Image) {
	e.img = img
	e.original = img.Clone()
	e.path = ""
	e.history.Clear()
}

// Save writes the current image to path. A failed save mutates nothing.
func (e *Editor) Save(path string) error {
	if e.img == nil {
		return ErrNoImage
	}
	if err := SaveImage(path, e.img); err != nil {
		return err
	}
	Logger().Info("image saved", "path", path)
	return nil
}

// Loaded reports whether an image is current.
func (e *Editor) Loaded() bool { return e.img != nil }

// Current returns the live image buffer, or nil when nothing is loaded.
// The editor retains ownership; mutate it only through Apply.
func (e *Editor) Current() *Image { return e.img }

// Path returns the path of the most recently loaded image.
func (e *Editor) Path() string { return e.path }

// History exposes the undo/redo store for capability queries.
func (e *Editor) History() *History { return e.history }

// Apply runs an immediate operation against the current image. On
// success the pre-operation snapshot is pushed to history under label;
// on error the image is restored and the error returned.
func (e *Editor) Apply(label string, op func(*Image) error) error {
	if e.img == nil {
		return ErrNoImage
	}
	snap := e.img.Clone()
	if err := op(e.img); err != nil {
		*e.img = *snap
		Logger().Warn("filter failed, state restored", "filter", label, "error", err)
		return fmt.Errorf("pix: apply %s: %w", label, err)
	}
	e.history.Push(snap, label)
	Logger().Debug("filter applied", "filter", label)
	return nil
}

// ApplyCancelable runs a long-running operation under the cooperative
// cancellation protocol: the token is cleared, a snapshot taken, and the
// operation handed the snapshot and token along with the editor's
// runner. On StatusDone the snapshot is pushed to history; on
// StatusCancelled the operation has already restored the image and
// history is untouched.
func (e *Editor) ApplyCancelable(label string, op func(r *Runner, m, pre *Image, tok *Token) Status) (Status, error) {
	if e.img == nil {
		return StatusDone, ErrNoImage
	}
	e.tok.Reset()
	snap := e.img.Clone()
	st := op(&e.runner, e.img, snap, &e.tok)
	if st == StatusDone {
		e.history.Push(snap, label)
		Logger().Debug("filter applied", "filter", label)
	}
	return st, nil
}

// Cancel requests cancellation of the operation currently running
// through ApplyCancelable. Safe to call from another goroutine.
func (e *Editor) Cancel() { e.tok.Cancel() }

// Undo reverts the most recent mutation. It returns the label of the
// undone operation and whether anything happened.
func (e *Editor) Undo() (string, bool) {
	if e.img == nil {
		return "", false
	}
	return e.history.Undo(e.img)
}

// Redo reapplies the most recently undone mutation.
func (e *Editor) Redo() (string, bool) {
	if e.img == nil {
		return "", false
	}
	return e.history.Redo(e.img)
}

// CanUndo reports whether Undo would succeed.
func (e *Editor) CanUndo() bool { return e.img != nil && e.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (e *Editor) CanRedo() bool { return e.img != nil && e.history.CanRedo() }

// Reset restores the originally loaded image as a normal undoable
// mutation.
func (e *Editor) Reset() error {
	return e.Apply("Reset", func(m *Image) error {
		*m = *e.original.Clone()
		return nil
	})
}

// Unload discards the current image and all history.
func (e *Editor) Unload() {
	e.img = nil
	e.original = nil
	e.path = ""
	e.history.Clear()
	Logger().Info("image unloaded")
}
