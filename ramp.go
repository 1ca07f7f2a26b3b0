package hueseek

// RampStop is one control point of the ring gradient.
type RampStop struct {
	Color    Color
	Position float32
}

// rampColors are the gradient stops in sweep order. The colored stops cover
// the first half of the sweep; the second half is transparent.
var rampColors = [...]Color{
	0xFFFF0000, // red 0º
	0xFFFF7D00, // orange 30º
	0xFFFFFF00, // yellow 60º
	0xFF7DFF00, // spring green 90º
	0xFF00FF00, // green 120º
	0xFF00FF7D, // turquoise 150º
	0xFF00FFFF, // cyan 180º
	0xFF007DFF, // ocean 210º
	0xFF0000FF, // blue 240º
	0xFF7D00FF, // violet 270º
	0xFFFF00FF, // magenta 300º
	0xFFFF007D, // raspberry 330º
	0xFFFF0000, // red 360º
	Transparent,
	Transparent,
}

var hueRamp = buildHueRamp()

// buildHueRamp computes the stop positions in float32 arithmetic so they
// match the rendered ring bit for bit. The twelfth colored position is
// 0.504, slightly past the first transparent stop at 0.5.
func buildHueRamp() [len(rampColors)]RampStop {
	multiplier := float32(0.5)
	increment := float32(0.084)

	var stops [len(rampColors)]RampStop
	for i := range stops {
		stops[i].Color = rampColors[i]
	}
	for i := 1; i <= 12; i++ {
		stops[i].Position = multiplier * increment * float32(i)
	}
	stops[13].Position = 0.5
	stops[14].Position = 1
	return stops
}

// HueRamp returns a copy of the 15-entry ring gradient table.
func HueRamp() []RampStop {
	out := make([]RampStop, len(hueRamp))
	copy(out, hueRamp[:])
	return out
}
