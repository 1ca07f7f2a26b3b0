package hueseek

import "log/slog"

// revisedStartRadians is the revised variant's initial raw angle, a float32
// approximation of -π/2 that quantizes to WheelAngle 0.
const revisedStartRadians = -1.5707774

// SeekBar is the hue picker engine: it owns the wheel geometry and the
// selector, consumes pointer events and reports the picked color.
//
// A SeekBar is not safe for concurrent use. All calls are expected to come
// from the single goroutine that delivers UI events, so that each event
// observes the state left by the one before it.
type SeekBar struct {
	opts options

	geom  Geometry
	sized bool

	angle      float64 // raw atan2 of the last accepted position
	selX, selY float64
	state      DragState

	listener Listener
}

// New creates a SeekBar. Resize must be called before pointer events are
// delivered.
func New(opts ...Option) (*SeekBar, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	b := &SeekBar{
		opts:     o,
		listener: o.listener,
	}
	if o.variant == VariantRevised {
		b.angle = revisedStartRadians
	}
	return b, nil
}

func (b *SeekBar) log() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}

// Resize recomputes the geometry for a widget of width×height pixels and
// returns it. The selector is moved back to its resting position; the angle
// and color are left unchanged.
func (b *SeekBar) Resize(width, height int) Geometry {
	b.geom = NewGeometry(width, height, b.opts.barWidth, b.opts.style)
	b.selX, b.selY = b.geom.StartPoint()
	b.sized = true
	b.invalidate()
	return b.geom
}

// HandlePointer feeds one pointer event into the drag state machine.
// It always reports the event as consumed.
func (b *SeekBar) HandlePointer(ev PointerEvent) bool {
	if !b.sized {
		b.log().Warn("hueseek: pointer event before resize ignored", "kind", ev.Kind)
		return true
	}
	switch ev.Kind {
	case PointerDown:
		b.pointerDown(ev.X, ev.Y)
	case PointerMove:
		b.pointerMove(ev.X, ev.Y)
	case PointerUp:
		b.pointerUp()
	}
	return true
}

func (b *SeekBar) pointerDown(x, y float64) {
	if b.state == Dragging || !b.hit(x, y) {
		return
	}
	b.state = Dragging
	q, c := b.Angle(), b.Color()
	b.log().Debug("hueseek: drag start", "angle", float64(q), "color", c.Hex())
	if b.listener != nil {
		b.listener.OnTouchStart(q, c)
	}
	b.invalidate()
}

// hit reports whether (x, y) falls strictly inside the selector's hit box.
func (b *SeekBar) hit(x, y float64) bool {
	box := b.geom.SelectorRadius
	if b.opts.variant == VariantRevised {
		box += SelectorMargin
	}
	return x > b.selX-box && x < b.selX+box &&
		y > b.selY-box && y < b.selY+box
}

func (b *SeekBar) pointerMove(x, y float64) {
	if b.state != Dragging {
		return
	}
	var moved bool
	if b.opts.variant == VariantLegacy {
		moved = b.moveLegacy(x, y)
	} else {
		moved = b.moveRevised(x, y)
	}
	if !moved {
		return
	}

	q, c := b.Angle(), b.Color()
	if b.listener != nil {
		b.listener.OnTouchMove(q, c)
	}
	b.invalidate()
}

// moveRevised accepts positions in the right half-plane only.
func (b *SeekBar) moveRevised(x, y float64) bool {
	raw := b.geom.AngleOf(x, y)
	if !inRightHalfPlane(raw) {
		b.log().Debug("hueseek: move rejected", "degrees", toDegrees(raw))
		return false
	}
	b.angle = raw
	b.selX, b.selY = b.geom.PointAt(raw)
	b.log().Debug("hueseek: move", "angle", float64(Quantize(raw)))
	return true
}

// moveLegacy ignores positions outside the widget. Inside it, the angle only
// follows the pointer near the ring, but the selector is redrawn either way.
func (b *SeekBar) moveLegacy(x, y float64) bool {
	if !b.geom.Contains(x, y) {
		b.log().Debug("hueseek: move outside widget ignored", "x", x, "y", y)
		return false
	}
	r := b.geom.DistanceOf(x, y)
	if r > b.geom.Radius-LegacyRadiusTolerance && r < b.geom.Radius+LegacyRadiusTolerance {
		b.angle = b.geom.AngleOf(x, y)
	}
	b.selX, b.selY = b.geom.PointAt(b.angle)
	return true
}

func (b *SeekBar) pointerUp() {
	if b.state != Dragging {
		return
	}
	b.state = Idle
	q, c := b.Angle(), b.Color()
	b.log().Debug("hueseek: drag end", "angle", float64(q), "color", c.Hex())
	if b.listener != nil {
		b.listener.OnTouchEnd(q, c)
	}
}

func (b *SeekBar) invalidate() {
	if b.opts.invalidator != nil {
		b.opts.invalidator()
	}
}

// SetListener replaces the drag listener. Only one listener is active.
func (b *SeekBar) SetListener(l Listener) {
	b.listener = l
}

// ClearListener removes the drag listener. Calling it again is a no-op.
func (b *SeekBar) ClearListener() {
	b.listener = nil
}

// Geometry returns the geometry computed by the last Resize.
func (b *SeekBar) Geometry() Geometry { return b.geom }

// State returns the current drag state.
func (b *SeekBar) State() DragState { return b.state }

// Variant returns the configured engine variant.
func (b *SeekBar) Variant() Variant { return b.opts.variant }

// Radians returns the raw angle of the last accepted pointer position.
func (b *SeekBar) Radians() float64 { return b.angle }

// Angle returns the current selector position as a WheelAngle.
func (b *SeekBar) Angle() WheelAngle { return Quantize(b.angle) }

// Color returns the color at the current selector position.
func (b *SeekBar) Color() Color { return ColorOf(b.Angle()) }

// Selector returns the center of the selector knob in widget pixels.
func (b *SeekBar) Selector() (x, y float64) { return b.selX, b.selY }

// RenderData is everything a rendering collaborator needs to paint the
// control. It is a snapshot; mutating it has no effect on the SeekBar.
type RenderData struct {
	Geometry             Geometry
	SelectorX, SelectorY float64
	Angle                WheelAngle
	Color                Color
	Dragging             bool

	RingColor     Color
	SelectorColor Color

	// Ramp is the ring gradient, applied as a sweep around the center of
	// Geometry.Bounds and rotated clockwise by GradientRotation degrees.
	Ramp             []RampStop
	GradientRotation float64
}

// RenderData returns a snapshot of the current render state.
func (b *SeekBar) RenderData() RenderData {
	return RenderData{
		Geometry:         b.geom,
		SelectorX:        b.selX,
		SelectorY:        b.selY,
		Angle:            b.Angle(),
		Color:            b.Color(),
		Dragging:         b.state == Dragging,
		RingColor:        RingColor,
		SelectorColor:    SelectorColor,
		Ramp:             HueRamp(),
		GradientRotation: GradientRotationDegrees,
	}
}
