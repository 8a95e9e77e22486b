package pix

import "math/rand"

// DefaultProgressInterval is the number of scan units between progress
// reports when a Runner does not set its own interval.
const DefaultProgressInterval = 50

// Runner executes long-running filters under the cooperative
// cancellation protocol. Before every scan unit it reads the Token (this
// check is never throttled); after each unit it reports progress through
// Progress, throttled to every Interval units plus a final report.
//
// The zero Runner is usable: no progress reporting, default interval.
// Runners are stateless between calls and safe to reuse.
type Runner struct {
	// Progress receives (done, total) reports. Nil disables reporting.
	Progress ProgressFunc

	// Interval is the number of units between reports. Values < 1 mean
	// DefaultProgressInterval.
	Interval int
}

// scan drives a unit-structured pass over total units. pre is the
// pre-operation snapshot used for exact restoration; when nil, scan
// captures its own before the first unit runs. On cancellation the
// target image is restored from the snapshot and no partial result is
// visible.
func (r *Runner) scan(m *Image, pre *Image, tok *Token, total int, unit func(int)) Status {
	if pre == nil {
		pre = m.Clone()
	}
	interval := r.Interval
	if interval < 1 {
		interval = DefaultProgressInterval
	}
	for i := 0; i < total; i++ {
		if tok != nil && tok.Cancelled() {
			*m = *pre.Clone()
			Logger().Debug("filter cancelled", "done", i, "total", total)
			return StatusCancelled
		}
		unit(i)
		if r.Progress != nil && ((i+1)%interval == 0 || i+1 == total) {
			r.Progress(i+1, total)
		}
	}
	return StatusDone
}

// Grayscale is the cancelable form of [Grayscale], checkpointing per row.
func (r *Runner) Grayscale(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.height, func(y int) { grayscaleRow(m, y) })
}

// BlackWhite is the cancelable form of [BlackWhite].
func (r *Runner) BlackWhite(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.height, func(y int) { blackWhiteRow(m, y) })
}

// Invert is the cancelable form of [Invert].
func (r *Runner) Invert(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.height, func(y int) { invertRow(m, y) })
}

// Purple is the cancelable form of [Purple].
func (r *Runner) Purple(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.height, func(y int) { purpleRow(m, y) })
}

// Sunlight is the cancelable form of [Sunlight].
func (r *Runner) Sunlight(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.height, func(y int) { sunlightRow(m, y) })
}

// TV is the cancelable form of [TV].
func (r *Runner) TV(m, pre *Image, tok *Token, rng *rand.Rand) Status {
	rng = tvRand(rng)
	return r.scan(m, pre, tok, m.height, func(y int) { tvRow(m, y, rng) })
}

// Infrared is the cancelable form of [Infrared]. The scan is
// column-major, so checkpoints and progress are per column.
func (r *Runner) Infrared(m, pre *Image, tok *Token) Status {
	return r.scan(m, pre, tok, m.width, func(x int) { infraredColumn(m, x) })
}

// Blur is the cancelable form of [Blur]. The blurred result becomes
// visible only on completion.
func (r *Runner) Blur(m, pre *Image, tok *Token, strength int) Status {
	radius := blurRadius(strength)
	out := NewImage(m.width, m.height)
	st := r.scan(m, pre, tok, m.height, func(y int) { blurRow(m, out, y, radius) })
	if st == StatusDone {
		*m = *out
	}
	return st
}

// Emboss is the cancelable form of [Emboss].
func (r *Runner) Emboss(m, pre *Image, tok *Token) Status {
	out := NewImage(m.width, m.height)
	st := r.scan(m, pre, tok, max(0, m.height-1), func(y int) { embossRow(m, out, y) })
	if st == StatusDone {
		*m = *out
	}
	return st
}

// DoubleVision is the cancelable form of [DoubleVision].
func (r *Runner) DoubleVision(m, pre *Image, tok *Token, offset int) Status {
	offset = max(0, offset)
	out := NewImage(m.width, m.height)
	st := r.scan(m, pre, tok, m.height, func(y int) { doubleVisionRow(m, out, y, offset) })
	if st == StatusDone {
		*m = *out
	}
	return st
}

// OilPainting is the cancelable form of [OilPainting].
func (r *Runner) OilPainting(m, pre *Image, tok *Token, radius, intensity int) Status {
	radius = max(1, radius)
	intensity = min(255, max(1, intensity))
	out := NewImage(m.width, m.height)
	st := r.scan(m, pre, tok, m.height, func(y int) { oilRow(m, out, y, radius, intensity) })
	if st == StatusDone {
		*m = *out
	}
	return st
}

// FishEye is the cancelable form of [FishEye].
func (r *Runner) FishEye(m, pre *Image, tok *Token) Status {
	out := NewImage(m.width, m.height)
	st := r.scan(m, pre, tok, m.height, func(y int) { fishEyeRow(m, out, y) })
	if st == StatusDone {
		*m = *out
	}
	return st
}
