package pix

import (
	"math/rand"
	"time"
)

// TV applies a CRT-monitor look in place: every 3rd scanline darkened to
// 70%, a brightness-dependent color temperature shift, and uniform
// per-channel noise in [-10, 10].
//
// rng supplies the noise source so the effect is reproducible under test;
// pass nil for a time-seeded source (each invocation then produces a
// different grain, which is the intended look).
func TV(m *Image, rng *rand.Rand) {
	rng = tvRand(rng)
	for y := 0; y < m.height; y++ {
		tvRow(m, y, rng)
	}
}

func tvRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func tvRow(m *Image, y int, rng *rand.Rand) {
	scanline := 1.0
	if y%3 == 0 {
		scanline = 0.7
	}
	for x := 0; x < m.width; x++ {
		i := (y*m.width + x) * Channels
		r := int(m.data[i])
		g := int(m.data[i+1])
		b := int(m.data[i+2])

		brightness := float64(r+g+b) / 3.0 / 255.0
		if brightness < 0.5 {
			r = min(255, int(float64(r)*0.8))
			g = min(255, int(float64(g)*0.7))
			b = min(255, int(float64(b)*1.2))
		}
		if brightness > 0.7 {
			r = min(255, int(float64(r)*1.3))
			g = min(255, int(float64(g)*1.1))
			b = max(0, int(float64(b)*0.9))
		}

		r = int(float64(r) * scanline)
		g = int(float64(g) * scanline)
		b = int(float64(b) * scanline)

		m.data[i] = clamp255(r + rng.Intn(21) - 10)
		m.data[i+1] = clamp255(g + rng.Intn(21) - 10)
		m.data[i+2] = clamp255(b + rng.Intn(21) - 10)
	}
}
