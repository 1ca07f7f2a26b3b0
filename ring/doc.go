// Package ring paints a hueseek.SeekBar: the stroked hue ring, the selector
// knob and an optional text label.
//
// Painting is done with github.com/gogpu/gg on its software path. The ring
// uses a sweep gradient built from hueseek.HueRamp, centered on the ring
// bounds and rotated by RenderData.GradientRotation, so the color under the
// selector agrees with hueseek.ColorOf for the selector's angle.
//
//	img, err := ring.Render(bar.RenderData(), ring.WithLabel("180"))
//	if err != nil {
//	    return err
//	}
//	return ring.WritePNG(w, img)
package ring
