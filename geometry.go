package hueseek

import "math"

const (
	// DefaultBarWidth is the ring stroke width used when none is configured.
	DefaultBarWidth = 24

	// SelectorRadiusRatio scales the bar width to the selector knob radius.
	SelectorRadiusRatio = 1.5

	// SelectorMargin enlarges the revised variant's hit box on every side.
	SelectorMargin = 25

	// LegacyRadiusTolerance is the half-width of the band around the ring in
	// which the legacy variant updates the angle.
	LegacyRadiusTolerance = 50

	// StartDegrees is the angle at which the selector initially rests.
	StartDegrees = -90

	// GradientRotationDegrees rotates the ring gradient so that its first
	// stop lines up with the selector's resting position.
	GradientRotationDegrees = 270

	// padding is reserved around the ring bounds. Always zero.
	padding = 0
)

// Rect is an axis-aligned rectangle in widget pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Geometry is the layout of the wheel for one widget size.
//
// The wheel center sits on the left edge of the widget at half its height;
// the hosting container is expected to crop or offset the widget so that
// only the right half of the ring is visible.
type Geometry struct {
	Width, Height int
	BarWidth      int
	Style         Style

	// Bounds is the rectangle the ring stroke path is laid out in.
	Bounds Rect

	CenterX, CenterY float64
	Radius           float64
	SelectorRadius   float64
}

// NewGeometry derives the wheel layout for a widget of the given size.
// Zero or negative dimensions produce degenerate geometry; the caller is
// expected to avoid them.
func NewGeometry(width, height, barWidth int, style Style) Geometry {
	half := barWidth / 2
	diameter := max(width, height)
	return Geometry{
		Width:    width,
		Height:   height,
		BarWidth: barWidth,
		Style:    style,
		Bounds: Rect{
			Left:   float64(half - width),
			Top:    float64(half + padding),
			Right:  float64(width - half - padding),
			Bottom: float64(height - half - padding),
		},
		CenterX:        0,
		CenterY:        float64(height / 2),
		Radius:         float64(diameter/2 + style.offset(half)),
		SelectorRadius: float64(barWidth) * SelectorRadiusRatio,
	}
}

// PointAt returns the point on the ring at the given raw angle in radians.
// Points are measured from the center of Bounds.
func (g Geometry) PointAt(radians float64) (x, y float64) {
	return g.Bounds.CenterX() + g.Radius*math.Cos(radians),
		g.Bounds.CenterY() + g.Radius*math.Sin(radians)
}

// StartPoint returns the selector's resting position.
func (g Geometry) StartPoint() (x, y float64) {
	return g.PointAt(toRadians(StartDegrees))
}

// AngleOf returns the raw atan2 angle of (x, y) relative to the wheel center.
func (g Geometry) AngleOf(x, y float64) float64 {
	return math.Atan2(y-g.CenterY, x-g.CenterX)
}

// DistanceOf returns the distance of (x, y) from the wheel center.
func (g Geometry) DistanceOf(x, y float64) float64 {
	return math.Hypot(x-g.CenterX, y-g.CenterY)
}

// Contains reports whether (x, y) lies within the widget, edges included.
func (g Geometry) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(g.Width) && y >= 0 && y <= float64(g.Height)
}
