package pix

// RGB represents an 8-bit color triple, the native pixel type of Image.
type RGB struct {
	R, G, B uint8
}

// Common colors used by frames and backgrounds.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)
