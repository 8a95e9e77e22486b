package pix

// EditorOption configures an Editor during creation.
// Use functional options to customize Editor behavior.
//
// Example:
//
//	// Default history depth, no progress reporting
//	ed := pix.NewEditor()
//
//	// Shallow history and a progress sink
//	ed := pix.NewEditor(
//	    pix.WithHistoryCapacity(5),
//	    pix.WithProgress(func(done, total int) { bar.Set(done, total) }),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	historyCapacity  int
	progress         ProgressFunc
	progressInterval int
}

// defaultEditorOptions returns the default editor options.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		historyCapacity:  DefaultHistoryCapacity,
		progressInterval: DefaultProgressInterval,
	}
}

// WithHistoryCapacity bounds the undo and redo stacks to n snapshots
// each. Values < 1 keep the default.
func WithHistoryCapacity(n int) EditorOption {
	return func(o *editorOptions) {
		if n >= 1 {
			o.historyCapacity = n
		}
	}
}

// WithProgress installs a progress sink for cancelable operations run
// through the editor.
func WithProgress(fn ProgressFunc) EditorOption {
	return func(o *editorOptions) {
		o.progress = fn
	}
}

// WithProgressInterval sets how many scan units pass between progress
// reports. The cancellation check itself is never throttled.
func WithProgressInterval(n int) EditorOption {
	return func(o *editorOptions) {
		if n >= 1 {
			o.progressInterval = n
		}
	}
}
