package pix

// Merge blends two images by elementwise integer average over the
// intersection of their dimensions. The result is min(w1,w2) x
// min(h1,h2) and replaces m wholesale. Neither input is resized; use
// MergeResized for the grow-to-match policy.
func Merge(m, other *Image) {
	w := min(m.width, other.width)
	h := min(m.height, other.height)
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < Channels; c++ {
				v := (int(m.Get(x, y, c)) + int(other.Get(x, y, c))) / 2
				out.Set(x, y, c, uint8(v))
			}
		}
	}
	*m = *out
}

// MergeResized resizes both images to the larger of each dimension with
// nearest-neighbor sampling and then averages them, so no content is
// cropped. other is modified like m; pass a clone to preserve it.
func MergeResized(m, other *Image) error {
	targetW := max(m.width, other.width)
	targetH := max(m.height, other.height)
	if m.width != targetW || m.height != targetH {
		if err := Resize(m, targetW, targetH); err != nil {
			return err
		}
	}
	if other.width != targetW || other.height != targetH {
		if err := Resize(other, targetW, targetH); err != nil {
			return err
		}
	}
	Merge(m, other)
	return nil
}
