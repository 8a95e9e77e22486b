// Command pixtool applies a filter to an image file.
//
// Usage:
//
//	pixtool -input photo.png -output out.png -filter grayscale
//	pixtool -input photo.png -output out.jpg -filter blur -strength 80
//	pixtool -input photo.png -output out.png -filter frame -style "Gold Decorated Frame"
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/photosmith/pix"
)

func main() {
	var (
		input     = flag.String("input", "", "input image path (png, jpg, bmp, tga)")
		output    = flag.String("output", "", "output image path (png, jpg, bmp)")
		filter    = flag.String("filter", "", "filter to apply (see -list)")
		list      = flag.Bool("list", false, "list available filters and exit")
		strength  = flag.Int("strength", pix.DefaultBlurStrength, "blur strength, 0 to 100")
		radius    = flag.Int("radius", 5, "oil painting sampling radius")
		intensity = flag.Int("intensity", 20, "oil painting intensity levels")
		offset    = flag.Int("offset", pix.DefaultDoubleVisionOffset, "double vision ghost offset in pixels")
		angle     = flag.Float64("angle", 15, "skew angle in degrees")
		percent   = flag.Int("percent", 50, "darken/lighten amount, 0 to 100")
		direction = flag.String("direction", "Horizontal", "flip direction: Horizontal or Vertical")
		rotation  = flag.String("rotation", "90°", "rotation angle: 90°, 180° or 270°")
		style     = flag.String("style", "Simple Frame", "frame style name")
		width     = flag.Int("width", 0, "target width for resize")
		height    = flag.Int("height", 0, "target height for resize")
		verbose   = flag.Bool("verbose", false, "report progress and enable debug logging")
	)
	flag.Parse()

	if *list {
		listFilters()
		return
	}
	if *input == "" || *output == "" || *filter == "" {
		flag.Usage()
		os.Exit(2)
	}

	var opts []pix.EditorOption
	if *verbose {
		pix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		opts = append(opts, pix.WithProgress(func(done, total int) {
			fmt.Fprintf(os.Stderr, "\r%s: %d/%d", *filter, done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}))
	}

	ed := pix.NewEditor(opts...)
	if err := ed.Load(*input); err != nil {
		log.Fatalf("load %s: %v", *input, err)
	}

	if err := apply(ed, *filter, params{
		strength:  *strength,
		radius:    *radius,
		intensity: *intensity,
		offset:    *offset,
		angle:     *angle,
		percent:   *percent,
		direction: *direction,
		rotation:  *rotation,
		style:     *style,
		width:     *width,
		height:    *height,
	}); err != nil {
		log.Fatalf("apply %s: %v", *filter, err)
	}

	if err := ed.Save(*output); err != nil {
		log.Fatalf("save %s: %v", *output, err)
	}
}

type params struct {
	strength  int
	radius    int
	intensity int
	offset    int
	angle     float64
	percent   int
	direction string
	rotation  string
	style     string
	width     int
	height    int
}

func apply(ed *pix.Editor, name string, p params) error {
	switch name {
	case "grayscale":
		_, err := ed.Grayscale()
		return err
	case "blackwhite":
		_, err := ed.BlackWhite()
		return err
	case "invert":
		_, err := ed.Invert()
		return err
	case "purple":
		_, err := ed.Purple()
		return err
	case "sunlight":
		_, err := ed.Sunlight()
		return err
	case "infrared":
		_, err := ed.Infrared()
		return err
	case "tv":
		_, err := ed.TV(nil)
		return err
	case "blur":
		_, err := ed.Blur(p.strength)
		return err
	case "emboss":
		_, err := ed.Emboss()
		return err
	case "doublevision":
		_, err := ed.DoubleVision(p.offset)
		return err
	case "oil":
		_, err := ed.OilPainting(p.radius, p.intensity)
		return err
	case "fisheye":
		_, err := ed.FishEye()
		return err
	case "edges":
		return ed.Edges()
	case "dark":
		return ed.DarkLight(pix.ToneDark, p.percent)
	case "light":
		return ed.DarkLight(pix.ToneLight, p.percent)
	case "flip":
		dir, err := pix.ParseFlipDirection(p.direction)
		if err != nil {
			return err
		}
		return ed.Flip(dir)
	case "rotate":
		rot, err := pix.ParseRotation(p.rotation)
		if err != nil {
			return err
		}
		return ed.Rotate(rot)
	case "resize":
		if p.width < 1 || p.height < 1 {
			return fmt.Errorf("resize needs -width and -height")
		}
		return ed.Resize(p.width, p.height)
	case "skew":
		return ed.Skew(p.angle)
	case "frame":
		st, err := pix.ParseFrameStyle(p.style)
		if err != nil {
			return err
		}
		return ed.Frame(st)
	default:
		return fmt.Errorf("unknown filter %q", name)
	}
}

func listFilters() {
	names := []string{
		"grayscale", "blackwhite", "invert", "purple", "sunlight",
		"infrared", "tv", "blur", "emboss", "doublevision", "oil",
		"fisheye", "edges", "dark", "light", "flip", "rotate",
		"resize", "skew", "frame",
	}
	for _, n := range names {
		fmt.Println(n)
	}
}
