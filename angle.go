package hueseek

import "math"

// WheelAngle is the position of the selector on the wheel, in the unit the
// color bands are tuned to: geometric degrees shifted by +90 and doubled,
// then rounded half up. The top of the wheel (-90°) is 0, the rightmost point
// (0°) is 180 and the bottom (90°) is 360.
//
// A WheelAngle is not a plain 0–360° hue. Use Degrees to convert back.
type WheelAngle float64

// Quantize converts a raw atan2 angle in radians to a WheelAngle.
func Quantize(radians float64) WheelAngle {
	return WheelAngle(math.Floor((toDegrees(radians)+90)*2 + 0.5))
}

// Degrees returns the geometric angle, in degrees, that q was quantized
// from (within a quarter degree).
func (q WheelAngle) Degrees() float64 {
	return float64(q)/2 - 90
}

// Color returns ColorOf(q).
func (q WheelAngle) Color() Color {
	return ColorOf(q)
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// inRightHalfPlane reports whether a raw atan2 angle lies within [-90°, 90°].
func inRightHalfPlane(radians float64) bool {
	d := toDegrees(radians)
	return d >= -90 && d <= 90
}
