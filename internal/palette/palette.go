// Package palette describes picked colors in human terms: true hue, nearest
// named color and display labels.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/hueseek"
)

func toColorful(c hueseek.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// Hue returns the HSV hue of c in degrees, in [0, 360). Grays report 0.
func Hue(c hueseek.Color) float64 {
	h, _, _ := toColorful(c).Hsv()
	return h
}

// Nearest returns the CSS color name closest to c in CIE Lab space, and the
// distance to it. Ties go to the alphabetically first name.
func Nearest(c hueseek.Color) (name string, dist float64) {
	target := toColorful(c)
	dist = math.Inf(1)
	for _, n := range colornames.Names {
		rgba := colornames.Map[n]
		cand := colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}
		if d := target.DistanceLab(cand); d < dist {
			name, dist = n, d
		}
	}
	return name, dist
}

// Title returns s with its first letter upper-cased, e.g. "Centered".
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Description is a human-readable summary of a wheel position.
type Description struct {
	Angle   hueseek.WheelAngle
	Degrees float64
	Color   hueseek.Color
	Hue     float64
	Name    string
}

// Describe summarizes the color at wheel angle q.
func Describe(q hueseek.WheelAngle) Description {
	c := q.Color()
	name, _ := Nearest(c)
	return Description{
		Angle:   q,
		Degrees: q.Degrees(),
		Color:   c,
		Hue:     Hue(c),
		Name:    name,
	}
}

// String formats d on one line.
func (d Description) String() string {
	return fmt.Sprintf("angle=%g degrees=%g color=%s hue=%.1f name=%s",
		float64(d.Angle), d.Degrees, d.Color.Hex(), d.Hue, d.Name)
}
