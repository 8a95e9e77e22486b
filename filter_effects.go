package pix

import "math"

// Emboss replaces the image with a relief-like grayscale built from the
// clamped difference against the lower-right neighbor, biased by 128.
// The last row and column have no neighbor and stay zero-filled (black).
func Emboss(m *Image) {
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height-1; y++ {
		embossRow(m, out, y)
	}
	*m = *out
}

func embossRow(src, dst *Image, y int) {
	for x := 0; x < src.width-1; x++ {
		sum := 0
		for c := 0; c < Channels; c++ {
			diff := int(src.Get(x, y, c)) - int(src.Get(x+1, y+1, c)) + 128
			sum += int(clamp255(diff))
		}
		v := uint8(sum / 3)
		i := (y*dst.width + x) * Channels
		dst.data[i], dst.data[i+1], dst.data[i+2] = v, v, v
	}
}

// DefaultDoubleVisionOffset is the horizontal ghost distance in pixels.
const DefaultDoubleVisionOffset = 15

// DoubleVision blends each pixel with the pixel offset columns to its
// right (clamped to the last column), weighted 60/40, with a +25 red
// lift. Negative offsets are treated as zero.
func DoubleVision(m *Image, offset int) {
	offset = max(0, offset)
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		doubleVisionRow(m, out, y, offset)
	}
	*m = *out
}

func doubleVisionRow(src, dst *Image, y, offset int) {
	for x := 0; x < src.width; x++ {
		nx := min(x+offset, src.width-1)
		i := (y*src.width + x) * Channels
		j := (y*src.width + nx) * Channels
		r := min(255, int(float64(src.data[i])*0.6+float64(src.data[j])*0.4)+25)
		g := int(float64(src.data[i+1])*0.6 + float64(src.data[j+1])*0.4)
		b := int(float64(src.data[i+2])*0.6 + float64(src.data[j+2])*0.4)
		dst.data[i], dst.data[i+1], dst.data[i+2] = uint8(r), uint8(g), uint8(b)
	}
}

// OilPainting posterizes the image with a mode filter: each output pixel
// takes the average color of the most populous intensity level inside a
// (2*radius+1)^2 neighborhood, where level = avg(R,G,B)/intensity. When
// two levels tie, the lower level wins (the 0..255 scan keeps the first
// maximum it finds).
//
// radius is clamped to >= 1 and intensity to [1, 255].
func OilPainting(m *Image, radius, intensity int) {
	radius = max(1, radius)
	intensity = min(255, max(1, intensity))
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		oilRow(m, out, y, radius, intensity)
	}
	*m = *out
}

func oilRow(src, dst *Image, y, radius, intensity int) {
	var count, redSum, greenSum, blueSum [256]int
	for x := 0; x < src.width; x++ {
		for i := range count {
			count[i], redSum[i], greenSum[i], blueSum[i] = 0, 0, 0, 0
		}
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
				r, g, b := int(src.data[i]), int(src.data[i+1]), int(src.data[i+2])
				level := (r + g + b) / 3 / intensity
				count[level]++
				redSum[level] += r
				greenSum[level] += g
				blueSum[level] += b
			}
		}
		maxCount, maxLevel := 0, 0
		for k := 0; k < 256; k++ {
			if count[k] > maxCount {
				maxCount = count[k]
				maxLevel = k
			}
		}
		denom := max(1, count[maxLevel])
		di := (y*dst.width + x) * Channels
		dst.data[di] = uint8(redSum[maxLevel] / denom)
		dst.data[di+1] = uint8(greenSum[maxLevel] / denom)
		dst.data[di+2] = uint8(blueSum[maxLevel] / denom)
	}
}

// FishEye applies a barrel distortion: pixels inside the circle of
// radius min(centerX, centerY) are remapped along their angle to
// distance d^0.75 and sampled nearest-neighbor; pixels outside copy
// through unchanged.
func FishEye(m *Image) {
	out := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		fishEyeRow(m, out, y)
	}
	*m = *out
}

func fishEyeRow(src, dst *Image, y int) {
	centerX := float64(src.width) / 2.0
	centerY := float64(src.height) / 2.0
	radius := math.Min(centerX, centerY)
	for x := 0; x < src.width; x++ {
		dx := (float64(x) - centerX) / radius
		dy := (float64(y) - centerY) / radius
		dist := math.Sqrt(dx*dx + dy*dy)
		sx, sy := x, y
		if dist > 0 && dist < 1 {
			newDist := math.Pow(dist, 0.75)
			nx := centerX + (dx/dist)*newDist*radius
			ny := centerY + (dy/dist)*newDist*radius
			sx = min(max(int(nx), 0), src.width-1)
			sy = min(max(int(ny), 0), src.height-1)
		}
		si := (sy*src.width + sx) * Channels
		di := (y*dst.width + x) * Channels
		copy(dst.data[di:di+Channels], src.data[si:si+Channels])
	}
}
