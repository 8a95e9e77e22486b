package pix

import "math"

// gaussian5 is the 5x5 binomial approximation of a Gaussian kernel.
// All weights sum to 256, so normalization is a single integer divide.
var gaussian5 = [5][5]int{
	{1, 4, 6, 4, 1},
	{4, 16, 24, 16, 4},
	{6, 24, 36, 24, 6},
	{4, 16, 24, 16, 4},
	{1, 4, 6, 4, 1},
}

// Sobel gradient kernels.
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

const edgeThreshold = 50

// Edges replaces the image with a binary edge map: black edges on a
// white background.
//
// The pipeline is luma grayscale (0.299R + 0.587G + 0.114B), a 5x5
// Gaussian blur over interior pixels (a 2-pixel margin is left
// untouched), a 3x3 Sobel convolution (1-pixel margin), then gradient
// magnitude thresholded at 50. Margin pixels that no stage writes stay
// black, as the zero-initialized output dictates.
func Edges(m *Image) {
	gray := NewImage(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := (y*m.width + x) * Channels
			v := uint8(0.299*float64(m.data[i]) + 0.587*float64(m.data[i+1]) + 0.114*float64(m.data[i+2]))
			gray.data[i], gray.data[i+1], gray.data[i+2] = v, v, v
		}
	}

	blurred := NewImage(m.width, m.height)
	for y := 2; y < m.height-2; y++ {
		for x := 2; x < m.width-2; x++ {
			sum := 0
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					sum += int(gray.Get(x+kx, y+ky, 0)) * gaussian5[ky+2][kx+2]
				}
			}
			v := uint8(sum / 256)
			i := (y*m.width + x) * Channels
			blurred.data[i], blurred.data[i+1], blurred.data[i+2] = v, v, v
		}
	}

	edge := NewImage(m.width, m.height)
	for y := 1; y < m.height-1; y++ {
		for x := 1; x < m.width-1; x++ {
			gx, gy := 0, 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := int(blurred.Get(x+kx, y+ky, 0))
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude := min(255, max(0, int(math.Sqrt(float64(gx*gx+gy*gy)))))
			var v uint8 = 255
			if magnitude > edgeThreshold {
				v = 0
			}
			i := (y*m.width + x) * Channels
			edge.data[i], edge.data[i+1], edge.data[i+2] = v, v, v
		}
	}

	*m = *edge
}
