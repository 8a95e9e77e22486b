package pix

// DefaultBlurStrength is the blur strength used when the caller has no
// preference.
const DefaultBlurStrength = 60

// blurRadius maps a 0-100 strength to a box radius of 1-25. Out-of-range
// strengths are clamped.
func blurRadius(strength int) int {
	strength = min(100, max(0, strength))
	return max(1, strength*24/100+1)
}

// Blur applies a box blur: each pixel becomes the average of the
// (2r+1)^2 window around it, where r derives from strength via
// blurRadius. Windows are clipped to the image and divided by the actual
// in-bounds sample count, so borders stay unbiased.
func Blur(m *Image, strength int) {
	radius := blurRadius(strength)
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		blurRow(m, out, y, radius)
	}
	*m = *out
}

func blurRow(src, dst *Image, y, radius int) {
	for x := 0; x < src.width; x++ {
		var r, g, b, count int
		for dy := -radius; dy <= radius; dy++ {
			ny := y + dy
			if ny < 0 || ny >= src.height {
				continue
			}
			for dx := -radius; dx <= radius; dx++ {
				nx := x + dx
				if nx < 0 || nx >= src.width {
					continue
				}
				i := (ny*src.width + nx) * Channels
				r += int(src.data[i])
				g += int(src.data[i+1])
				b += int(src.data[i+2])
				count++
			}
		}
		count = max(1, count)
		di := (y*dst.width + x) * Channels
		dst.data[di] = uint8(r / count)
		dst.data[di+1] = uint8(g / count)
		dst.data[di+2] = uint8(b / count)
	}
}
