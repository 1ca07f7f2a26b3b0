// Package hueseek implements the engine of a circular hue picker: a ring
// painted with the full hue wheel and a draggable selector knob whose
// position on the ring selects a color.
//
// # Overview
//
// The engine is UI-agnostic. A host UI layer reports the widget size and
// forwards pointer events; the engine keeps the wheel geometry and selector
// state and notifies a Listener with the picked color. The host reads
// RenderData to paint the ring and the knob (see package ring for a painter
// built on github.com/gogpu/gg).
//
// # Quick Start
//
//	bar, err := hueseek.New(hueseek.WithListener(hueseek.ListenerFuncs{
//	    Move: func(q hueseek.WheelAngle, c hueseek.Color) {
//	        fmt.Println(q, c.Hex())
//	    },
//	}))
//	if err != nil {
//	    return err
//	}
//	bar.Resize(200, 400)
//	bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerDown, X: x, Y: y})
//
// # Coordinate System
//
// Widget pixels, origin at the top-left, Y increasing down. The wheel center
// lies on the left edge of the widget at half its height, so raw angles
// increase clockwise on screen.
//
// # Wheel Angles
//
// Listener callbacks report a WheelAngle rather than degrees: the raw angle
// shifted by 90° and doubled. The six color bands of ColorOf are laid out on
// that scale, from red at 0 through yellow, green, cyan, blue and magenta back
// to red at 360. WheelAngle.Degrees converts back to geometric degrees.
//
// # Variants
//
// VariantRevised (the default) limits dragging to the right half of the
// wheel. VariantLegacy follows the pointer anywhere near the ring but stops at
// the widget edges.
package hueseek

// Version is the current version of the library.
const Version = "0.3.0"
