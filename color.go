package hueseek

import (
	"fmt"
	"image/color"
)

// Color is a 32-bit ARGB value: alpha in the top byte, blue in the lowest.
type Color uint32

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000

	// RingColor is the base paint color of the ring before the hue gradient
	// is applied.
	RingColor Color = 0xAA000000

	// SelectorColor fills the selector knob.
	SelectorColor Color = White
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

// ARGB packs four channel bytes into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// NRGBA returns the non-premultiplied 8-bit representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Hex returns the color as "#AARRGGBB".
func (c Color) Hex() string {
	return "#" + HexByte(int(c.A())) + HexByte(int(c.R())) + HexByte(int(c.G())) + HexByte(int(c.B()))
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// ParseColor parses "#RRGGBB" (opaque) or "#AARRGGBB". Hex digits may be
// upper or lower case.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	digits := s[1:]
	var v uint32
	switch len(digits) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(digits); i++ {
		n, ok := hexValue(digits[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v = v<<4 | n
	}
	if len(digits) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

func hexValue(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// colorIncrement is the per-unit slope of a ramped channel: 255 / 60.
const colorIncrement = 4.25

// ColorOf maps a wheel angle to an opaque color on the six-band hue ramp.
//
// Each band holds one channel at 0xFF, one at 0x00 and ramps the third with
// slope 4.25 per unit of q. The ramped value is truncated and encoded through
// HexByte, so it wraps to its low byte rather than being clamped. Bands are
// half-open except the last, which includes 360. Angles outside [0, 360]
// yield opaque black.
func ColorOf(q WheelAngle) Color {
	a := float64(q)
	switch {
	case a >= 0 && a < 60:
		return composeRGB("FF", HexByte(int(a*colorIncrement)), "00") // red
	case a >= 60 && a < 120:
		return composeRGB(HexByte(int(255-(a-60)*colorIncrement)), "FF", "00") // yellow
	case a >= 120 && a < 180:
		return composeRGB("00", "FF", HexByte(int((a-120)*colorIncrement))) // green
	case a >= 180 && a < 240:
		return composeRGB("00", HexByte(int(255-(a-180)*colorIncrement)), "FF") // cyan
	case a >= 240 && a < 300:
		return composeRGB(HexByte(int((a-240)*colorIncrement)), "00", "FF") // blue
	case a >= 300 && a <= 360:
		return composeRGB("FF", "00", HexByte(int(255-(a-300)*colorIncrement))) // magenta
	}
	return Black
}

// composeRGB assembles an opaque color from three two-digit hex channels.
func composeRGB(r, g, b string) Color {
	c, err := ParseColor("#FF" + r + g + b)
	if err != nil {
		return Black
	}
	return c
}
