package pix

import (
	"sync/atomic"
	"testing"
)

// TestToken verifies the cancel/reset/query cycle.
func TestToken(t *testing.T) {
	var tok Token
	if tok.Cancelled() {
		t.Error("zero token reports cancelled")
	}
	tok.Cancel()
	if !tok.Cancelled() {
		t.Error("Cancel() did not set the flag")
	}
	tok.Reset()
	if tok.Cancelled() {
		t.Error("Reset() did not clear the flag")
	}
}

// TestStatusString covers the two statuses and an unknown value.
func TestStatusString(t *testing.T) {
	if got := StatusDone.String(); got != "done" {
		t.Errorf("StatusDone = %q, want done", got)
	}
	if got := StatusCancelled.String(); got != "cancelled" {
		t.Errorf("StatusCancelled = %q, want cancelled", got)
	}
}

// TestRunner_Completes verifies a cancelable run matches the immediate
// filter when nothing cancels it.
func TestRunner_Completes(t *testing.T) {
	var r Runner
	m := testGradient(8, 8)
	want := m.Clone()
	Invert(want)

	var tok Token
	if st := r.Invert(m, nil, &tok); st != StatusDone {
		t.Fatalf("status = %v, want done", st)
	}
	if !m.Equal(want) {
		t.Error("cancelable invert diverged from the immediate filter")
	}
}

// TestRunner_PreCancelledRestores verifies a token set before the run
// leaves the image bit-for-bit identical to the snapshot.
func TestRunner_PreCancelledRestores(t *testing.T) {
	var r Runner
	m := testGradient(6, 6)
	orig := m.Clone()

	var tok Token
	tok.Cancel()
	if st := r.Grayscale(m, nil, &tok); st != StatusCancelled {
		t.Fatalf("status = %v, want cancelled", st)
	}
	if !m.Equal(orig) {
		t.Error("cancelled run left a modified image")
	}
}

// TestRunner_MidRunCancelRestores cancels from the progress callback and
// verifies restoration from the provided snapshot.
func TestRunner_MidRunCancelRestores(t *testing.T) {
	m := testGradient(4, 10)
	pre := m.Clone()

	var tok Token
	r := Runner{
		Interval: 1,
		Progress: func(done, total int) {
			if done == 3 {
				tok.Cancel()
			}
		},
	}
	if st := r.Invert(m, pre, &tok); st != StatusCancelled {
		t.Fatalf("status = %v, want cancelled", st)
	}
	if !m.Equal(pre) {
		t.Error("mid-run cancel left a partial result")
	}
}

// TestRunner_OutOfPlaceCancelKeepsSource verifies a filter that builds
// into a scratch buffer publishes nothing when cancelled.
func TestRunner_OutOfPlaceCancelKeepsSource(t *testing.T) {
	m := testGradient(5, 8)
	orig := m.Clone()

	var tok Token
	r := Runner{
		Interval: 1,
		Progress: func(done, total int) {
			if done == 2 {
				tok.Cancel()
			}
		},
	}
	if st := r.Blur(m, nil, &tok, 50); st != StatusCancelled {
		t.Fatalf("status = %v, want cancelled", st)
	}
	if !m.Equal(orig) {
		t.Error("cancelled blur modified the image")
	}
}

// TestRunner_ProgressThrottling verifies reports land every Interval
// units plus a final completion report.
func TestRunner_ProgressThrottling(t *testing.T) {
	m := testGradient(2, 10)

	var reports []int
	r := Runner{
		Interval: 4,
		Progress: func(done, total int) {
			if total != 10 {
				t.Errorf("total = %d, want 10", total)
			}
			reports = append(reports, done)
		},
	}
	var tok Token
	if st := r.Grayscale(m, nil, &tok); st != StatusDone {
		t.Fatalf("status = %v, want done", st)
	}

	want := []int{4, 8, 10}
	if len(reports) != len(want) {
		t.Fatalf("reports = %v, want %v", reports, want)
	}
	for i, w := range want {
		if reports[i] != w {
			t.Fatalf("reports = %v, want %v", reports, want)
		}
	}
}

// TestRunner_FinalReportNotDoubled verifies a total divisible by the
// interval reports the last unit once.
func TestRunner_FinalReportNotDoubled(t *testing.T) {
	m := testGradient(2, 8)

	var reports []int
	r := Runner{
		Interval: 4,
		Progress: func(done, total int) { reports = append(reports, done) },
	}
	var tok Token
	r.Invert(m, nil, &tok)

	want := []int{4, 8}
	if len(reports) != len(want) || reports[0] != 4 || reports[1] != 8 {
		t.Fatalf("reports = %v, want %v", reports, want)
	}
}

// TestRunner_NilToken verifies a nil token means the run cannot be
// cancelled.
func TestRunner_NilToken(t *testing.T) {
	var r Runner
	m := testGradient(4, 4)
	if st := r.Purple(m, nil, nil); st != StatusDone {
		t.Errorf("status = %v, want done", st)
	}
}

// TestRunner_CancelFromAnotherGoroutine exercises the token's only
// concurrency contract: a flag set elsewhere is observed between units.
func TestRunner_CancelFromAnotherGoroutine(t *testing.T) {
	m := testGradient(4, 200)
	orig := m.Clone()

	var tok Token
	var started atomic.Bool
	done := make(chan struct{})
	r := Runner{
		Interval: 1,
		Progress: func(int, int) {
			if started.CompareAndSwap(false, true) {
				go func() {
					tok.Cancel()
					close(done)
				}()
			}
			<-done
		},
	}

	st := r.Grayscale(m, nil, &tok)
	if st != StatusCancelled {
		t.Fatalf("status = %v, want cancelled", st)
	}
	if !m.Equal(orig) {
		t.Error("concurrent cancel left a partial result")
	}
}
