package pix

import "sync/atomic"

// Token is a shared cancellation flag. A Token is not an interrupt:
// filters observe it only at their checkpoints (once per scan unit), so
// responsiveness depends on unit granularity, not on the setter.
//
// The zero Token is ready to use. Cancel may be called from any
// goroutine; the flag is the only state shared across execution
// contexts and is lock-free.
type Token struct {
	flag atomic.Bool
}

// Cancel requests cancellation of the operation reading this token.
func (t *Token) Cancel() { t.flag.Store(true) }

// Reset clears the token before a new operation starts.
func (t *Token) Reset() { t.flag.Store(false) }

// Cancelled reports whether cancellation has been requested.
func (t *Token) Cancelled() bool { return t.flag.Load() }

// Status is the outcome of a cancelable operation. Cancellation is not
// an error: it is a successful-but-aborted outcome with the image
// restored to its pre-operation snapshot.
type Status int

// Cancelable operation outcomes.
const (
	StatusDone Status = iota
	StatusCancelled
)

// String returns the outcome name.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// ProgressFunc receives throttled progress reports as (units completed,
// total units). Units are rows for row-major filters and columns for
// Infrared.
type ProgressFunc func(done, total int)
