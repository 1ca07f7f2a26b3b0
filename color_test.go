package hueseek

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorOf_Bands(t *testing.T) {
	tests := []struct {
		name string
		q    WheelAngle
		want Color
	}{
		{"red", 0, 0xFFFF0000},
		{"orange", 30, 0xFFFF7F00},
		{"yellow", 60, 0xFFFFFF00},
		{"spring green", 90, 0xFF7FFF00},
		{"green", 120, 0xFF00FF00},
		{"turquoise", 150, 0xFF00FF7F},
		{"cyan", 180, 0xFF00FFFF},
		{"ocean", 210, 0xFF007FFF},
		{"blue", 240, 0xFF0000FF},
		{"violet", 270, 0xFF7F00FF},
		{"magenta", 300, 0xFFFF00FF},
		{"raspberry", 330, 0xFFFF007F},
		{"red again", 360, 0xFFFF0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorOf(tt.q); got != tt.want {
				t.Errorf("ColorOf(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestColorOf_EndsMatch(t *testing.T) {
	if ColorOf(0) != ColorOf(360) {
		t.Errorf("ColorOf(0) = %v, ColorOf(360) = %v; want equal", ColorOf(0), ColorOf(360))
	}
}

func TestColorOf_OutOfRangeIsBlack(t *testing.T) {
	for _, q := range []WheelAngle{-180, -1, -0.5, 360.5, 361, 540} {
		if got := ColorOf(q); got != Black {
			t.Errorf("ColorOf(%v) = %v, want %v", q, got, Black)
		}
	}
}

func TestColorOf_OpaqueInRange(t *testing.T) {
	for q := WheelAngle(0); q <= 360; q += 0.25 {
		if a := ColorOf(q).A(); a != 0xFF {
			t.Fatalf("ColorOf(%v) alpha = %#x, want 0xFF", q, a)
		}
	}
}

func TestColorOf_Continuity(t *testing.T) {
	for _, edge := range []WheelAngle{60, 120, 180, 240, 300} {
		below, at := ColorOf(edge-1e-9), ColorOf(edge)
		for i, pair := range [][2]uint8{{below.R(), at.R()}, {below.G(), at.G()}, {below.B(), at.B()}} {
			d := int(pair[0]) - int(pair[1])
			if d < -1 || d > 1 {
				t.Errorf("edge %v channel %d: %#x below vs %#x at edge", edge, i, pair[0], pair[1])
			}
		}
	}
}

func TestColor_Channels(t *testing.T) {
	c := ARGB(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Fatalf("ARGB() = %#x, want 0x12345678", uint32(c))
	}
	if c.A() != 0x12 || c.R() != 0x34 || c.G() != 0x56 || c.B() != 0x78 {
		t.Errorf("channels = %#x %#x %#x %#x", c.A(), c.R(), c.G(), c.B())
	}
	if got := c.Hex(); got != "#12345678" {
		t.Errorf("Hex() = %q, want #12345678", got)
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Color(0xFFFF8000).RGBA()
	want := color.NRGBA{R: 0xFF, G: 0x80, B: 0, A: 0xFF}
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestColor_NRGBA(t *testing.T) {
	got := Color(0x80FF4000).NRGBA()
	want := color.NRGBA{R: 0xFF, G: 0x40, B: 0, A: 0x80}
	if got != want {
		t.Errorf("NRGBA() = %+v, want %+v", got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", 0xFFFF0000, false},
		{"#ff7d00", 0xFFFF7D00, false},
		{"#AA000000", 0xAA000000, false},
		{"#00000000", 0x00000000, false},
		{"FF0000", 0, true},
		{"#FFF", 0, true},
		{"#GG0000", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
