package hueseek

import "fmt"

// PointerKind identifies a pointer action.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// PointerEvent is a single pointer action in widget-local pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// DragState is the state of the selector drag machine.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Listener receives drag notifications. The angle is a WheelAngle, not plain
// degrees.
type Listener interface {
	OnTouchStart(angle WheelAngle, c Color)
	OnTouchMove(angle WheelAngle, c Color)
	OnTouchEnd(angle WheelAngle, c Color)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Start func(WheelAngle, Color)
	Move  func(WheelAngle, Color)
	End   func(WheelAngle, Color)
}

func (f ListenerFuncs) OnTouchStart(angle WheelAngle, c Color) {
	if f.Start != nil {
		f.Start(angle, c)
	}
}

func (f ListenerFuncs) OnTouchMove(angle WheelAngle, c Color) {
	if f.Move != nil {
		f.Move(angle, c)
	}
}

func (f ListenerFuncs) OnTouchEnd(angle WheelAngle, c Color) {
	if f.End != nil {
		f.End(angle, c)
	}
}
