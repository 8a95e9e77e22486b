package pix

import "math/rand"

// Convenience wrappers binding each filter to Apply or ApplyCancelable
// under its history label. The scan filters return the completion
// status so callers can tell a finished run from a cancelled one.

func (e *Editor) Grayscale() (Status, error) {
	return e.ApplyCancelable("Grayscale", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Grayscale(m, pre, tok)
	})
}

func (e *Editor) BlackWhite() (Status, error) {
	return e.ApplyCancelable("Black and White", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.BlackWhite(m, pre, tok)
	})
}

func (e *Editor) Invert() (Status, error) {
	return e.ApplyCancelable("Invert", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Invert(m, pre, tok)
	})
}

func (e *Editor) Purple() (Status, error) {
	return e.ApplyCancelable("Purple", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Purple(m, pre, tok)
	})
}

func (e *Editor) Sunlight() (Status, error) {
	return e.ApplyCancelable("Sunlight", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Sunlight(m, pre, tok)
	})
}

func (e *Editor) Infrared() (Status, error) {
	return e.ApplyCancelable("Infrared", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Infrared(m, pre, tok)
	})
}

// TV applies the analog television effect. A nil rng seeds one from the
// clock.
func (e *Editor) TV(rng *rand.Rand) (Status, error) {
	return e.ApplyCancelable("TV Effect", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.TV(m, pre, tok, rng)
	})
}

func (e *Editor) Blur(strength int) (Status, error) {
	return e.ApplyCancelable("Blur", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Blur(m, pre, tok, strength)
	})
}

func (e *Editor) Emboss() (Status, error) {
	return e.ApplyCancelable("Emboss", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.Emboss(m, pre, tok)
	})
}

func (e *Editor) DoubleVision(offset int) (Status, error) {
	return e.ApplyCancelable("Double Vision", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.DoubleVision(m, pre, tok, offset)
	})
}

func (e *Editor) OilPainting(radius, intensity int) (Status, error) {
	return e.ApplyCancelable("Oil Painting", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.OilPainting(m, pre, tok, radius, intensity)
	})
}

func (e *Editor) FishEye() (Status, error) {
	return e.ApplyCancelable("Fish Eye", func(r *Runner, m, pre *Image, tok *Token) Status {
		return r.FishEye(m, pre, tok)
	})
}

func (e *Editor) Edges() error {
	return e.Apply("Edge Detection", func(m *Image) error {
		Edges(m)
		return nil
	})
}

func (e *Editor) DarkLight(tone Tone, percent int) error {
	label := "Darken"
	if tone == ToneLight {
		label = "Lighten"
	}
	return e.Apply(label, func(m *Image) error {
		return DarkLight(m, tone, percent)
	})
}

func (e *Editor) Flip(dir FlipDirection) error {
	return e.Apply("Flip "+dir.String(), func(m *Image) error {
		return Flip(m, dir)
	})
}

func (e *Editor) Rotate(angle Rotation) error {
	return e.Apply("Rotate "+angle.String(), func(m *Image) error {
		return Rotate(m, angle)
	})
}

func (e *Editor) Resize(width, height int) error {
	return e.Apply("Resize", func(m *Image) error {
		return Resize(m, width, height)
	})
}

func (e *Editor) Skew(angleDegrees float64) error {
	return e.Apply("Skew", func(m *Image) error {
		Skew(m, angleDegrees)
		return nil
	})
}

func (e *Editor) Crop(x, y, w, h int) error {
	return e.Apply("Crop", func(m *Image) error {
		return Crop(m, x, y, w, h)
	})
}

func (e *Editor) Frame(style FrameStyle) error {
	return e.Apply(style.String(), func(m *Image) error {
		return Frame(m, style)
	})
}

// Merge blends other into the current image over their shared region.
func (e *Editor) Merge(other *Image) error {
	return e.Apply("Merge", func(m *Image) error {
		Merge(m, other)
		return nil
	})
}

// MergeResized stretches both images to their common maximum size
// before blending.
func (e *Editor) MergeResized(other *Image) error {
	return e.Apply("Merge Resized", func(m *Image) error {
		return MergeResized(m, other)
	})
}
