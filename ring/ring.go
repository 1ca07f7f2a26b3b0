package ring

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/hueseek"
)

// ErrEmptyGeometry is returned when asked to render a zero-sized widget.
var ErrEmptyGeometry = errors.New("ring: widget has no area")

// Option configures Render.
type Option func(*options)

type options struct {
	background hueseek.Color
	label      string
	labelColor *hueseek.Color
	hideKnob   bool
}

// WithBackground fills the image with c before painting. The default is
// transparent.
func WithBackground(c hueseek.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLabel draws text near the top-right corner in the selected color.
func WithLabel(text string) Option {
	return func(o *options) {
		o.label = text
	}
}

// WithLabelColor overrides the label color. By default the label uses the
// color under the selector.
func WithLabelColor(c hueseek.Color) Option {
	return func(o *options) {
		o.labelColor = &c
	}
}

// WithoutKnob paints the ring only.
func WithoutKnob() Option {
	return func(o *options) {
		o.hideKnob = true
	}
}

// toRGBA converts an ARGB color to gg's float representation.
func toRGBA(c hueseek.Color) gg.RGBA {
	return gg.RGBA2(
		float64(c.R())/255,
		float64(c.G())/255,
		float64(c.B())/255,
		float64(c.A())/255,
	)
}

// Brush builds the sweep gradient for the ring described by d.
func Brush(d hueseek.RenderData) *gg.SweepGradientBrush {
	b := d.Geometry.Bounds
	start := d.GradientRotation * math.Pi / 180
	brush := gg.NewSweepGradientBrush(b.CenterX(), b.CenterY(), start)
	for _, s := range d.Ramp {
		brush.AddColorStop(float64(s.Position), toRGBA(s.Color))
	}
	return brush
}

// Draw paints the ring and the selector onto dc.
func Draw(dc *gg.Context, d hueseek.RenderData) error {
	return paint(dc, d, false)
}

func paint(dc *gg.Context, d hueseek.RenderData, hideKnob bool) error {
	g := d.Geometry

	if len(d.Ramp) == 0 {
		dc.SetStrokeBrush(gg.Solid(toRGBA(d.RingColor)))
	} else {
		dc.SetStrokeBrush(Brush(d))
	}
	dc.SetLineWidth(float64(g.BarWidth))
	dc.DrawCircle(g.CenterX, g.CenterY, g.Radius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("ring: stroke: %w", err)
	}

	if hideKnob {
		return nil
	}
	dc.SetFillBrush(gg.Solid(toRGBA(d.SelectorColor)))
	dc.DrawCircle(d.SelectorX, d.SelectorY, g.SelectorRadius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("ring: selector: %w", err)
	}
	return nil
}

// Render paints d into a new image the size of the widget.
func Render(d hueseek.RenderData, opts ...Option) (*image.RGBA, error) {
	o := options{background: hueseek.Transparent}
	for _, opt := range opts {
		opt(&o)
	}

	g := d.Geometry
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGeometry, g.Width, g.Height)
	}

	dc := gg.NewContext(g.Width, g.Height)
	defer func() {
		_ = dc.Close()
	}()

	dc.ClearWithColor(toRGBA(o.background))
	if err := paint(dc, d, o.hideKnob); err != nil {
		return nil, err
	}

	img := toImageRGBA(dc.Image())
	if o.label != "" {
		c := d.Color
		if o.labelColor != nil {
			c = *o.labelColor
		}
		DrawLabel(img, img.Bounds().Dx()-labelWidth(o.label)-labelInset, labelInset+basicfont.Face7x13.Ascent, o.label, c.NRGBA())
	}
	return img, nil
}

func toImageRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

const labelInset = 4

func labelWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// DrawLabel draws text with its baseline at (x, y) using a fixed 7x13 face.
func DrawLabel(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("ring: encode png: %w", err)
	}
	return nil
}
