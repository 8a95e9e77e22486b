package pix

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of color channels per pixel (R, G, B).
const Channels = 3

// Image is a dense 8-bit RGB pixel buffer. Pixels are stored row-major,
// channel-interleaved: the byte at (y*width + x)*3 + c holds channel c of
// the pixel at (x, y).
//
// An Image behaves like a value: Clone duplicates the full buffer, and
// filters that change dimensions build a fresh buffer and replace the
// target wholesale. The zero Image is a valid, empty 0x0 image.
//
// Out-of-range coordinates are a programming error and panic, the same
// way slice indexing does. Filters are responsible for keeping every
// addressed coordinate in range.
type Image struct {
	width  int
	height int
	data   []uint8
}

// NewImage creates a zero-initialized image with the given dimensions.
// Negative dimensions panic.
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pix: invalid dimensions %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*Channels),
	}
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the height of the image in pixels.
func (m *Image) Height() int { return m.height }

// Data returns the raw pixel data (RGB, 3 bytes per pixel).
func (m *Image) Data() []uint8 { return m.data }

// Empty reports whether the image has no pixels.
func (m *Image) Empty() bool { return m.width == 0 || m.height == 0 }

func (m *Image) offset(x, y, c int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || c < 0 || c >= Channels {
		panic(fmt.Sprintf("pix: coordinate (%d,%d,%d) out of bounds for %dx%d image",
			x, y, c, m.width, m.height))
	}
	return (y*m.width+x)*Channels + c
}

// Get returns channel c of the pixel at (x, y).
func (m *Image) Get(x, y, c int) uint8 {
	return m.data[m.offset(x, y, c)]
}

// Set stores v into channel c of the pixel at (x, y).
func (m *Image) Set(x, y, c int, v uint8) {
	m.data[m.offset(x, y, c)] = v
}

// SetClamped stores v into channel c of the pixel at (x, y), clamping v
// to [0, 255]. Filter arithmetic works in int and writes through here.
func (m *Image) SetClamped(x, y, c, v int) {
	m.data[m.offset(x, y, c)] = clamp255(v)
}

// Pixel returns the RGB triple at (x, y).
func (m *Image) Pixel(x, y int) RGB {
	i := m.offset(x, y, 0)
	return RGB{R: m.data[i], G: m.data[i+1], B: m.data[i+2]}
}

// SetPixel stores an RGB triple at (x, y).
func (m *Image) SetPixel(x, y int, p RGB) {
	i := m.offset(x, y, 0)
	m.data[i], m.data[i+1], m.data[i+2] = p.R, p.G, p.B
}

// Fill sets every pixel to p.
func (m *Image) Fill(p RGB) {
	for i := 0; i < len(m.data); i += Channels {
		m.data[i], m.data[i+1], m.data[i+2] = p.R, p.G, p.B
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	out := &Image{
		width:  m.width,
		height: m.height,
		data:   make([]uint8, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// Equal reports whether two images have identical dimensions and pixel
// data.
func (m *Image) Equal(other *Image) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// At implements the image.Image interface. The pixel is reported as an
// opaque NRGBA color.
func (m *Image) At(x, y int) color.Color {
	i := m.offset(x, y, 0)
	return color.NRGBA{R: m.data[i], G: m.data[i+1], B: m.data[i+2], A: 255}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// clamp255 clamps v to the byte range.
func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
