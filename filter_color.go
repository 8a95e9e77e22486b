package pix

import "fmt"

// Grayscale converts the image to grayscale in place using the integer
// mean of the three channels.
func Grayscale(m *Image) {
	for y := 0; y < m.height; y++ {
		grayscaleRow(m, y)
	}
}

func grayscaleRow(m *Image, y int) {
	for x := 0; x < m.width; x++ {
		i := (y*m.width + x) * Channels
		gray := (int(m.data[i]) + int(m.data[i+1]) + int(m.data[i+2])) / 3
		v := uint8(gray)
		m.data[i], m.data[i+1], m.data[i+2] = v, v, v
	}
}

// BlackWhite converts the image to binary black and white in place:
// pixels whose grayscale mean exceeds 127 become white, all others black.
func BlackWhite(m *Image) {
	for y := 0; y < m.height; y++ {
		blackWhiteRow(m, y)
	}
}

func blackWhiteRow(m *Image, y int) {
	for x := 0; x < m.width; x++ {
		i := (y*m.width + x) * Channels
		gray := (int(m.data[i]) + int(m.data[i+1]) + int(m.data[i+2])) / 3
		var v uint8
		if gray > 127 {
			v = 255
		}
		m.data[i], m.data[i+1], m.data[i+2] = v, v, v
	}
}

// Invert replaces every channel value v with 255-v, in place.
func Invert(m *Image) {
	for y := 0; y < m.height; y++ {
		invertRow(m, y)
	}
}

func invertRow(m *Image, y int) {
	row := m.data[y*m.width*Channels : (y+1)*m.width*Channels]
	for i, v := range row {
		row[i] = 255 - v
	}
}

// Purple applies a purple tint in place: R and B scaled by 1.3, G by 0.5,
// clamped.
func Purple(m *Image) {
	for y := 0; y < m.height; y++ {
		purpleRow(m, y)
	}
}

func purpleRow(m *Image, y int) {
	for x := 0; x < m.width; x++ {
		i := (y*m.width + x) * Channels
		m.data[i] = clamp255(int(float64(m.data[i]) * 1.3))
		m.data[i+1] = clamp255(int(float64(m.data[i+1]) * 0.5))
		m.data[i+2] = clamp255(int(float64(m.data[i+2]) * 1.3))
	}
}

// Infrared simulates infrared photography in place: the red channel is
// saturated and green/blue carry the inverted brightness. The scan is
// column-major; cancelable runs checkpoint per column.
func Infrared(m *Image) {
	for x := 0; x < m.width; x++ {
		infraredColumn(m, x)
	}
}

func infraredColumn(m *Image, x int) {
	for y := 0; y < m.height; y++ {
		i := (y*m.width + x) * Channels
		brightness := (int(m.data[i]) + int(m.data[i+1]) + int(m.data[i+2])) / 3
		inv := uint8(255 - brightness)
		m.data[i], m.data[i+1], m.data[i+2] = 255, inv, inv
	}
}

// Sunlight warms the image in place by boosting the red and green
// channels by 1.4x, clamped. Blue is untouched.
func Sunlight(m *Image) {
	for y := 0; y < m.height; y++ {
		sunlightRow(m, y)
	}
}

func sunlightRow(m *Image, y int) {
	for x := 0; x < m.width; x++ {
		i := (y*m.width + x) * Channels
		m.data[i] = clamp255(int(float64(m.data[i]) * 1.4))
		m.data[i+1] = clamp255(int(float64(m.data[i+1]) * 1.4))
	}
}

// DarkLight scales every channel by a factor derived from percent:
// 1-percent/100 for ToneDark, 1+percent/100 for ToneLight. Percent is
// clamped to [0, 100].
func DarkLight(m *Image, tone Tone, percent int) error {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	var factor float64
	switch tone {
	case ToneDark:
		factor = 1.0 - float64(percent)/100.0
	case ToneLight:
		factor = 1.0 + float64(percent)/100.0
	default:
		return fmt.Errorf("%w: tone %v", ErrInvalidParameter, tone)
	}
	for i, v := range m.data {
		m.data[i] = clamp255(int(float64(v) * factor))
	}
	return nil
}

// DarkLightLegacy is the original two-way adjustment without a percent:
// dark divides every channel by 3, light doubles it (clamped).
func DarkLightLegacy(m *Image, tone Tone) error {
	switch tone {
	case ToneDark:
		for i, v := range m.data {
			m.data[i] = v / 3
		}
	case ToneLight:
		for i, v := range m.data {
			m.data[i] = clamp255(int(v) * 2)
		}
	default:
		return fmt.Errorf("%w: tone %v", ErrInvalidParameter, tone)
	}
	return nil
}
