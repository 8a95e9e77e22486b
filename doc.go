// Package pix provides an 8-bit RGB image filter engine with bounded
// undo/redo history and cooperative cancellation.
//
// # Overview
//
// pix implements a catalog of classic raster filters (grayscale, invert,
// Sobel edge detection, box blur, emboss, oil painting, fish-eye, frames)
// over a dense row-major pixel buffer, together with the two disciplines a
// photo editor needs around them: a snapshot-based history manager and a
// cooperative checkpoint protocol that lets long-running filters be
// cancelled without leaving a partial result visible.
//
// # Quick Start
//
//	import "github.com/photosmith/pix"
//
//	ed := pix.NewEditor()
//	if err := ed.Load("in.png"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Immediate operation with automatic history snapshot.
//	ed.Apply("Invert", func(m *pix.Image) error {
//	    pix.Invert(m)
//	    return nil
//	})
//
//	ed.Undo()
//	ed.Save("out.png")
//
// Filters can also be used directly on an Image without an Editor:
//
//	m := pix.NewImage(640, 480)
//	pix.Grayscale(m)
//
// # Cancellation
//
// Long-running filters run through a Runner, which checks a shared Token
// before every scan unit (typically one row) and reports throttled
// progress. When the token is set, the image is restored bit-for-bit to
// its pre-operation snapshot:
//
//	var tok pix.Token
//	r := pix.Runner{Progress: func(done, total int) { fmt.Println(done, total) }}
//	time.AfterFunc(time.Second, tok.Cancel)
//	status := r.Blur(m, nil, &tok, 60)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Image, filter functions, Runner, History, Editor
//   - internal/imageio: PNG, JPEG, BMP and TGA encode/decode
//   - cmd/pixtool: command-line front end
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. Pixels
// are 3 bytes (R, G, B), row-major, channel-interleaved. There is no
// alpha channel.
//
// # Logging
//
// By default pix produces no log output. Call [SetLogger] to enable
// structured logging via log/slog.
package pix
