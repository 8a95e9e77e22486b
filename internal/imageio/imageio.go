// Package imageio handles file encode/decode for the pix engine.
//
// Images cross this boundary as stdlib image.Image values; the root
// package converts them to and from its RGB buffer. Load understands
// PNG, JPEG, BMP and TGA; Save writes PNG, JPEG and BMP.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// jpegQuality is the encode quality for JPEG output.
const jpegQuality = 90

// Load reads an image file, choosing the decoder from the extension and
// falling back to content sniffing for unknown extensions.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return decodeWith(png.Decode, f, "png")
	case ".jpg", ".jpeg":
		return decodeWith(jpeg.Decode, f, "jpeg")
	case ".bmp":
		return decodeWith(bmp.Decode, f, "bmp")
	case ".tga":
		return decodeWith(tga.Decode, f, "tga")
	default:
		return Decode(f)
	}
}

// Decode reads an image from r, detecting the format from its content.
// The imported decoders register themselves with the image package.
// TGA files carry no magic number, so they are only recognised by
// extension in Load.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	switch format {
	case "png", "jpeg", "bmp":
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decodeWith(decode func(io.Reader) (image.Image, error), r io.Reader, format string) (image.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", format, err)
	}
	return img, nil
}

// Save writes img to path in the format implied by the extension.
func Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("imageio: encode: %w", err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
