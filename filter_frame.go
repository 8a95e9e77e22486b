package pix

import "fmt"

// Frame palette colors.
var (
	frameDark       = RGB{20, 20, 20}
	goldOuter       = RGB{180, 140, 40}
	goldInner       = RGB{240, 210, 120}
	goldAccent      = RGB{200, 160, 60}
	decoratedOuter  = RGB{100, 70, 50}
	decoratedInner  = RGB{235, 225, 210}
	decoratedAccent = RGB{180, 140, 80}
)

// Frame surrounds the image with the chosen decoration, growing the
// canvas by the style's fixed geometry and replacing the image
// wholesale.
func Frame(m *Image, style FrameStyle) error {
	switch style {
	case FrameSimple:
		frameSimple(m)
	case FrameDoubleWhite:
		frameDoubleWhite(m)
	case FrameSolidBlue:
		frameSolid(m, Blue)
	case FrameSolidRed:
		frameSolid(m, Red)
	case FrameSolidGreen:
		frameSolid(m, Green)
	case FrameSolidBlack:
		frameSolid(m, Black)
	case FrameSolidWhite:
		frameSolid(m, White)
	case FrameShadow:
		frameShadow(m)
	case FrameGold:
		frameGold(m)
	case FrameDecorated:
		frameDecorated(m)
	default:
		return fmt.Errorf("%w: frame style %v", ErrInvalidParameter, style)
	}
	return nil
}

// paste copies src into dst with its top-left corner at (ox, oy).
func paste(dst, src *Image, ox, oy int) {
	for y := 0; y < src.height; y++ {
		si := y * src.width * Channels
		di := ((oy+y)*dst.width + ox) * Channels
		copy(dst.data[di:di+src.width*Channels], src.data[si:si+src.width*Channels])
	}
}

// frameSimple draws a blue outer border with a white inner band inset
// into the image area.
func frameSimple(m *Image) {
	const frameSize, innerFrame, gap = 10, 5, 5
	out := NewImage(m.width+2*frameSize, m.height+2*frameSize)
	out.Fill(Blue)
	paste(out, m, frameSize, frameSize)

	for y := frameSize + gap; y < frameSize+m.height-gap; y++ {
		for x := frameSize + gap; x < frameSize+m.width-gap; x++ {
			whiteBand := x < frameSize+gap+innerFrame ||
				x >= frameSize+m.width-gap-innerFrame ||
				y < frameSize+gap+innerFrame ||
				y >= frameSize+m.height-gap-innerFrame
			if whiteBand {
				out.SetPixel(x, y, White)
			}
		}
	}
	*m = *out
}

// frameDoubleWhite draws two concentric white rings on a near-black mat.
func frameDoubleWhite(m *Image) {
	const outer, inner, gap = 14, 6, 4
	pad := outer + inner + gap
	newW := m.width + 2*pad
	newH := m.height + 2*pad
	out := NewImage(newW, newH)
	out.Fill(frameDark)

	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			if x < outer || x >= newW-outer || y < outer || y >= newH-outer {
				out.SetPixel(x, y, White)
			}
		}
	}
	for y := outer + gap; y < newH-(outer+gap); y++ {
		for x := outer + gap; x < newW-(outer+gap); x++ {
			border := x < outer+gap+inner || x >= newW-(outer+gap+inner) ||
				y < outer+gap+inner || y >= newH-(outer+gap+inner)
			if border {
				out.SetPixel(x, y, White)
			}
		}
	}
	paste(out, m, pad, pad)
	*m = *out
}

// frameSolid draws a plain 20-pixel border in the given color.
func frameSolid(m *Image, col RGB) {
	const frame = 20
	out := NewImage(m.width+2*frame, m.height+2*frame)
	out.Fill(col)
	paste(out, m, frame, frame)
	*m = *out
}

// frameShadow pads the image top-left and casts a distance-shaded
// gradient toward the bottom-right.
func frameShadow(m *Image) {
	const pad, shadow = 15, 18
	newW := m.width + pad + shadow
	newH := m.height + pad + shadow
	out := NewImage(newW, newH)

	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			dx := max(0, x-(pad+m.width))
			dy := max(0, y-(pad+m.height))
			shade := min(60, max(dx, dy)*6)
			v := uint8(20 + shade)
			out.SetPixel(x, y, RGB{v, v, v})
		}
	}
	paste(out, m, pad, pad)
	*m = *out
}

// frameGold draws a wide gold border with diagonal accent stripes and a
// lighter inner plate.
func frameGold(m *Image) {
	const fw = 45
	newW := m.width + 2*fw
	newH := m.height + 2*fw
	out := NewImage(newW, newH)
	out.Fill(goldOuter)

	for y := 3; y < newH-3; y++ {
		for x := 3; x < newW-3; x++ {
			if (x+y)%11 == 0 || (x-y+1000)%13 == 0 {
				out.SetPixel(x, y, goldAccent)
			}
		}
	}
	for y := fw - 6; y < newH-(fw-6); y++ {
		for x := fw - 6; x < newW-(fw-6); x++ {
			out.SetPixel(x, y, goldInner)
		}
	}
	paste(out, m, fw, fw)
	*m = *out
}

// frameDecorated draws the ornate brown/beige default: banding keyed on
// distance from the canvas edge, with accent rings and a sparse diagonal
// stipple.
func frameDecorated(m *Image) {
	const frameWidth = 25
	newW := m.width + 2*frameWidth
	newH := m.height + 2*frameWidth
	out := NewImage(newW, newH)
	paste(out, m, frameWidth, frameWidth)

	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			inBorder := x < frameWidth || x >= newW-frameWidth ||
				y < frameWidth || y >= newH-frameWidth
			if !inBorder {
				continue
			}
			dist := min(min(x, y), min(newW-1-x, newH-1-y))
			switch {
			case dist < 3:
				out.SetPixel(x, y, decoratedOuter)
			case dist == 9 || dist == 12 || dist == 15:
				out.SetPixel(x, y, decoratedAccent)
			case dist < frameWidth-4:
				out.SetPixel(x, y, decoratedInner)
				cornerDist := min(min(x, newW-1-x), min(y, newH-1-y))
				if cornerDist < frameWidth && (x+y)%12 == 0 {
					out.SetPixel(x, y, decoratedAccent)
				}
			case dist < frameWidth-1:
				out.SetPixel(x, y, decoratedAccent)
			default:
				out.SetPixel(x, y, decoratedOuter)
			}
		}
	}
	*m = *out
}
