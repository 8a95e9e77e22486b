package pix

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when an operation receives an
// unrecognized selector or an out-of-range numeric parameter. The image
// is left unmodified.
var ErrInvalidParameter = errors.New("pix: invalid parameter")

// FlipDirection selects the axis for Flip.
type FlipDirection int

// Flip directions.
const (
	FlipHorizontal FlipDirection = iota
	FlipVertical
)

// String returns the user-facing name of the direction.
func (d FlipDirection) String() string {
	switch d {
	case FlipHorizontal:
		return "Horizontal"
	case FlipVertical:
		return "Vertical"
	}
	return fmt.Sprintf("FlipDirection(%d)", int(d))
}

// ParseFlipDirection maps a selector string to a FlipDirection.
func ParseFlipDirection(s string) (FlipDirection, error) {
	switch s {
	case "Horizontal":
		return FlipHorizontal, nil
	case "Vertical":
		return FlipVertical, nil
	}
	return 0, fmt.Errorf("%w: unknown flip direction %q", ErrInvalidParameter, s)
}

// Rotation selects the angle for Rotate. Only quarter turns are
// supported.
type Rotation int

// Rotation angles.
const (
	Rotate90 Rotation = iota
	Rotate180
	Rotate270
)

// String returns the user-facing name of the rotation.
func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	}
	return fmt.Sprintf("Rotation(%d)", int(r))
}

// ParseRotation maps a selector string to a Rotation. Both bare degree
// values ("90") and degree-sign forms ("90°") are accepted.
func ParseRotation(s string) (Rotation, error) {
	switch s {
	case "90", "90°":
		return Rotate90, nil
	case "180", "180°":
		return Rotate180, nil
	case "270", "270°":
		return Rotate270, nil
	}
	return 0, fmt.Errorf("%w: unknown rotation %q", ErrInvalidParameter, s)
}

// Tone selects between darkening and lightening for DarkLight.
type Tone int

// Tones.
const (
	ToneDark Tone = iota
	ToneLight
)

// String returns the user-facing name of the tone.
func (t Tone) String() string {
	switch t {
	case ToneDark:
		return "dark"
	case ToneLight:
		return "light"
	}
	return fmt.Sprintf("Tone(%d)", int(t))
}

// ParseTone maps a selector string to a Tone.
func ParseTone(s string) (Tone, error) {
	switch s {
	case "dark":
		return ToneDark, nil
	case "light":
		return ToneLight, nil
	}
	return 0, fmt.Errorf("%w: unknown tone %q", ErrInvalidParameter, s)
}

// FrameStyle selects the decoration drawn by Frame.
type FrameStyle int

// Frame styles. FrameDecorated is the ornate brown/beige default.
const (
	FrameSimple FrameStyle = iota
	FrameDoubleWhite
	FrameSolidBlue
	FrameSolidRed
	FrameSolidGreen
	FrameSolidBlack
	FrameSolidWhite
	FrameShadow
	FrameGold
	FrameDecorated
)

var frameStyleNames = map[FrameStyle]string{
	FrameSimple:      "Simple Frame",
	FrameDoubleWhite: "Double Border - White",
	FrameSolidBlue:   "Solid Frame - Blue",
	FrameSolidRed:    "Solid Frame - Red",
	FrameSolidGreen:  "Solid Frame - Green",
	FrameSolidBlack:  "Solid Frame - Black",
	FrameSolidWhite:  "Solid Frame - White",
	FrameShadow:      "Shadow Frame",
	FrameGold:        "Gold Decorated Frame",
	FrameDecorated:   "Decorated Frame",
}

// String returns the user-facing name of the style.
func (s FrameStyle) String() string {
	if name, ok := frameStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FrameStyle(%d)", int(s))
}

// ParseFrameStyle maps a selector string to a FrameStyle.
func ParseFrameStyle(s string) (FrameStyle, error) {
	for style, name := range frameStyleNames {
		if s == name {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown frame style %q", ErrInvalidParameter, s)
}
