package pix

import (
	"image"

	"github.com/photosmith/pix/internal/imageio"
)

// LoadImage reads a PNG, JPEG, BMP or TGA file into an RGB Image. Any
// alpha channel in the source is dropped.
func LoadImage(path string) (*Image, error) {
	src, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// SaveImage writes the image to path; the format follows the file
// extension (PNG, JPEG or BMP).
func SaveImage(path string, m *Image) error {
	return imageio.Save(path, m)
}

// FromImage converts any stdlib image into an RGB Image, dropping
// alpha.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*out.width + x) * Channels
			out.data[i] = uint8(r >> 8)
			out.data[i+1] = uint8(g >> 8)
			out.data[i+2] = uint8(b >> 8)
		}
	}
	return out
}
