// Package script replays recorded pointer gestures against a SeekBar.
//
// A script is a YAML list of steps:
//
//	name: sweep right
//	steps:
//	  - kind: down
//	    at: selector
//	  - kind: move
//	    angle: 45
//	  - kind: move
//	    x: 120
//	    y: 80
//	  - kind: up
//
// A step positions the pointer either at the current selector
// (at: selector), in polar form relative to the wheel center (angle in
// geometric degrees, distance defaulting to the ring radius) or at absolute
// widget pixels.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/hueseek"
)

// ErrInvalidStep is returned for steps that cannot be resolved to a point.
var ErrInvalidStep = errors.New("script: invalid step")

// AtSelector targets the selector's current position.
const AtSelector = "selector"

// Kind is a pointer kind that reads and writes as "down", "move" or "up".
type Kind hueseek.PointerKind

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "down":
		*k = Kind(hueseek.PointerDown)
	case "move":
		*k = Kind(hueseek.PointerMove)
	case "up":
		*k = Kind(hueseek.PointerUp)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(hueseek.PointerKind(k).String()), nil
}

// Step is one pointer event of a script.
type Step struct {
	Kind     Kind     `yaml:"kind"`
	At       string   `yaml:"at,omitempty"`
	Angle    *float64 `yaml:"angle,omitempty"`
	Distance *float64 `yaml:"distance,omitempty"`
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes a script from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (st Step) validate() error {
	targets := 0
	if st.At != "" {
		if st.At != AtSelector {
			return fmt.Errorf("%w: unknown target %q", ErrInvalidStep, st.At)
		}
		targets++
	}
	if st.Angle != nil {
		targets++
	} else if st.Distance != nil {
		return fmt.Errorf("%w: distance without angle", ErrInvalidStep)
	}
	if (st.X == nil) != (st.Y == nil) {
		return fmt.Errorf("%w: x and y must be given together", ErrInvalidStep)
	}
	if st.X != nil {
		targets++
	}
	if targets > 1 {
		return fmt.Errorf("%w: more than one target", ErrInvalidStep)
	}
	if targets == 0 && hueseek.PointerKind(st.Kind) != hueseek.PointerUp {
		return fmt.Errorf("%w: %s needs a target", ErrInvalidStep, hueseek.PointerKind(st.Kind))
	}
	return nil
}

// Resolve turns a step into a pointer event for bar's current state.
// An up step without a target is delivered at the selector.
func (st Step) Resolve(bar *hueseek.SeekBar) hueseek.PointerEvent {
	ev := hueseek.PointerEvent{Kind: hueseek.PointerKind(st.Kind)}
	g := bar.Geometry()
	switch {
	case st.Angle != nil:
		dist := g.Radius
		if st.Distance != nil {
			dist = *st.Distance
		}
		rad := *st.Angle * math.Pi / 180
		ev.X = g.CenterX + dist*math.Cos(rad)
		ev.Y = g.CenterY + dist*math.Sin(rad)
	case st.X != nil:
		ev.X, ev.Y = *st.X, *st.Y
	default:
		ev.X, ev.Y = bar.Selector()
	}
	return ev
}

// Play feeds every step to bar in order and returns the events delivered.
// bar must already be sized.
func (s *Script) Play(bar *hueseek.SeekBar) []hueseek.PointerEvent {
	events := make([]hueseek.PointerEvent, 0, len(s.Steps))
	for _, st := range s.Steps {
		ev := st.Resolve(bar)
		bar.HandlePointer(ev)
		events = append(events, ev)
	}
	return events
}

// Drag returns a script that grabs the selector, moves it to the ring point
// at the given geometric angle and releases it.
func Drag(degrees float64) *Script {
	return &Script{
		Name: fmt.Sprintf("drag to %g°", degrees),
		Steps: []Step{
			{Kind: Kind(hueseek.PointerDown), At: AtSelector},
			{Kind: Kind(hueseek.PointerMove), Angle: &degrees},
			{Kind: Kind(hueseek.PointerUp)},
		},
	}
}

// Record is one listener notification.
type Record struct {
	Event string
	Angle hueseek.WheelAngle
	Color hueseek.Color
}

// Recorder is a hueseek.Listener that keeps every notification.
type Recorder struct {
	Records []Record
}

func (r *Recorder) OnTouchStart(q hueseek.WheelAngle, c hueseek.Color) {
	r.Records = append(r.Records, Record{"start", q, c})
}

func (r *Recorder) OnTouchMove(q hueseek.WheelAngle, c hueseek.Color) {
	r.Records = append(r.Records, Record{"move", q, c})
}

func (r *Recorder) OnTouchEnd(q hueseek.WheelAngle, c hueseek.Color) {
	r.Records = append(r.Records, Record{"end", q, c})
}
