package hueseek

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name    string
		radians float64
		want    WheelAngle
	}{
		{"up", -math.Pi / 2, 0},
		{"revised start", revisedStartRadians, 0},
		{"right", 0, 180},
		{"down", math.Pi / 2, 360},
		{"left", math.Pi, 540},
		{"left from below", -math.Pi, -180},
		{"45 degrees", math.Pi / 4, 270},
		{"rounds up past a quarter degree", toRadians(0.3), 181},
		{"rounds down below a quarter degree", toRadians(0.2), 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.radians); got != tt.want {
				t.Errorf("Quantize(%v) = %v, want %v", tt.radians, got, tt.want)
			}
		})
	}
}

func TestWheelAngle_Degrees(t *testing.T) {
	tests := []struct {
		q    WheelAngle
		want float64
	}{
		{0, -90},
		{180, 0},
		{360, 90},
		{270, 45},
	}
	for _, tt := range tests {
		if got := tt.q.Degrees(); got != tt.want {
			t.Errorf("WheelAngle(%v).Degrees() = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestWheelAngle_Color(t *testing.T) {
	for _, q := range []WheelAngle{-1, 0, 45, 180, 299, 360, 361} {
		if got, want := q.Color(), ColorOf(q); got != want {
			t.Errorf("WheelAngle(%v).Color() = %v, want %v", q, got, want)
		}
	}
}

func TestInRightHalfPlane(t *testing.T) {
	tests := []struct {
		degrees float64
		want    bool
	}{
		{-90, true},
		{0, true},
		{90, true},
		{100, false},
		{-100, false},
		{180, false},
	}
	for _, tt := range tests {
		if got := inRightHalfPlane(tt.degrees * math.Pi / 180); got != tt.want {
			t.Errorf("inRightHalfPlane(%v°) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}
