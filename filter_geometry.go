package pix

import (
	"fmt"
	"math"
)

// Flip mirrors the image in place across the chosen axis by pairwise
// pixel swaps.
func Flip(m *Image, dir FlipDirection) error {
	switch dir {
	case FlipHorizontal:
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width/2; x++ {
				x2 := m.width - 1 - x
				for c := 0; c < Channels; c++ {
					tmp := m.Get(x, y, c)
					m.Set(x, y, c, m.Get(x2, y, c))
					m.Set(x2, y, c, tmp)
				}
			}
		}
	case FlipVertical:
		for y := 0; y < m.height/2; y++ {
			y2 := m.height - 1 - y
			for x := 0; x < m.width; x++ {
				for c := 0; c < Channels; c++ {
					tmp := m.Get(x, y, c)
					m.Set(x, y, c, m.Get(x, y2, c))
					m.Set(x, y2, c, tmp)
				}
			}
		}
	default:
		return fmt.Errorf("%w: flip direction %v", ErrInvalidParameter, dir)
	}
	return nil
}

// Rotate turns the image by a quarter-turn multiple. 90° and 270° swap
// dimensions and replace the buffer wholesale; 180° swaps pixels in
// place.
func Rotate(m *Image, angle Rotation) error {
	switch angle {
	case Rotate90:
		out := NewImage(m.height, m.width)
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				nx := m.height - 1 - y
				ny := x
				for c := 0; c < Channels; c++ {
					out.Set(nx, ny, c, m.Get(x, y, c))
				}
			}
		}
		*m = *out
	case Rotate180:
		for y := 0; y < m.height/2; y++ {
			for x := 0; x < m.width; x++ {
				x2 := m.width - 1 - x
				y2 := m.height - 1 - y
				for c := 0; c < Channels; c++ {
					tmp := m.Get(x, y, c)
					m.Set(x, y, c, m.Get(x2, y2, c))
					m.Set(x2, y2, c, tmp)
				}
			}
		}
	case Rotate270:
		out := NewImage(m.height, m.width)
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				nx := y
				ny := m.width - 1 - x
				for c := 0; c < Channels; c++ {
					out.Set(nx, ny, c, m.Get(x, y, c))
				}
			}
		}
		*m = *out
	default:
		return fmt.Errorf("%w: rotation %v", ErrInvalidParameter, angle)
	}
	return nil
}

// Resize rescales the image to width x height with nearest-neighbor
// sampling. The aspect ratio is not preserved. Non-positive dimensions
// return ErrInvalidParameter and leave the image unmodified.
func Resize(m *Image, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: resize to %dx%d", ErrInvalidParameter, width, height)
	}
	out := NewImage(width, height)
	xRatio := float64(m.width) / float64(width)
	yRatio := float64(m.height) / float64(height)
	for y := 0; y < height; y++ {
		srcY := min(int(float64(y)*yRatio), m.height-1)
		for x := 0; x < width; x++ {
			srcX := min(int(float64(x)*xRatio), m.width-1)
			si := (srcY*m.width + srcX) * Channels
			di := (y*width + x) * Channels
			copy(out.data[di:di+Channels], m.data[si:si+Channels])
		}
	}
	*m = *out
	return nil
}

// Skew shears the image horizontally by the given angle in degrees.
// Each row shifts by floor(tan(angle)*y); the canvas widens to fit the
// shifted content and exposed background is filled white.
func Skew(m *Image, angleDegrees float64) {
	tanA := math.Tan(angleDegrees * math.Pi / 180.0)

	minShift, maxShift := 0, 0
	if m.height > 0 {
		shiftTop := int(math.Floor(tanA * 0))
		shiftBottom := int(math.Floor(tanA * float64(m.height-1)))
		minShift = min(shiftTop, shiftBottom)
		maxShift = max(shiftTop, shiftBottom)
	}

	newWidth := max(1, m.width+(maxShift-minShift))
	out := NewImage(newWidth, m.height)
	out.Fill(White)

	for y := 0; y < m.height; y++ {
		shift := int(math.Floor(tanA * float64(y)))
		base := shift - minShift
		for x := 0; x < m.width; x++ {
			nx := x + base
			if nx >= 0 && nx < newWidth {
				for c := 0; c < Channels; c++ {
					out.Set(nx, y, c, m.Get(x, y, c))
				}
			}
		}
	}
	*m = *out
}

// Crop replaces the image with the w x h rectangle whose top-left corner
// is (x, y). The rectangle must lie entirely within the image.
func Crop(m *Image, x, y, w, h int) error {
	if x < 0 || y < 0 || w < 1 || h < 1 || x+w > m.width || y+h > m.height {
		return fmt.Errorf("%w: crop rect %dx%d at (%d,%d) in %dx%d image",
			ErrInvalidParameter, w, h, x, y, m.width, m.height)
	}
	out := NewImage(w, h)
	for dy := 0; dy < h; dy++ {
		si := ((y+dy)*m.width + x) * Channels
		di := dy * w * Channels
		copy(out.data[di:di+w*Channels], m.data[si:si+w*Channels])
	}
	*m = *out
	return nil
}
