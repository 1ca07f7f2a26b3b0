package script

import (
	"errors"
	"testing"

	"github.com/gogpu/hueseek"
)

const sweep = `
name: sweep
steps:
  - kind: down
    at: selector
  - kind: move
    angle: 0
  - kind: move
    angle: 100
  - kind: move
    x: 200
    y: 400
  - kind: up
`

func newBar(t *testing.T, rec *Recorder) *hueseek.SeekBar {
	t.Helper()
	bar, err := hueseek.New(hueseek.WithListener(rec))
	if err != nil {
		t.Fatal(err)
	}
	bar.Resize(200, 400)
	return bar
}

func TestParseAndPlay(t *testing.T) {
	s, err := Parse([]byte(sweep))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Name != "sweep" || len(s.Steps) != 5 {
		t.Fatalf("Parse() = %+v", s)
	}

	rec := &Recorder{}
	bar := newBar(t, rec)
	events := s.Play(bar)
	if len(events) != 5 {
		t.Fatalf("Play() delivered %d events, want 5", len(events))
	}

	// 100° is rejected; (200, 400) is at 45°.
	want := []Record{
		{"start", 0, 0xFFFF0000},
		{"move", 180, 0xFF00FFFF},
		{"move", 270, 0xFF7F00FF},
		{"end", 270, 0xFF7F00FF},
	}
	if len(rec.Records) != len(want) {
		t.Fatalf("records = %+v, want %+v", rec.Records, want)
	}
	for i := range want {
		if rec.Records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec.Records[i], want[i])
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown kind", "steps:\n  - kind: hover\n    at: selector\n"},
		{"unknown target", "steps:\n  - kind: down\n    at: center\n"},
		{"no target", "steps:\n  - kind: move\n"},
		{"two targets", "steps:\n  - kind: move\n    angle: 3\n    x: 1\n    y: 2\n"},
		{"x without y", "steps:\n  - kind: move\n    x: 1\n"},
		{"distance without angle", "steps:\n  - kind: move\n    distance: 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, ErrInvalidStep) {
				t.Errorf("Parse() error = %v, want ErrInvalidStep", err)
			}
		})
	}

	if _, err := Parse([]byte("stepz: []\n")); err == nil {
		t.Error("Parse() accepted an unknown key")
	}
}

func TestResolve_Polar(t *testing.T) {
	bar := newBar(t, &Recorder{})
	angle, dist := 0.0, 50.0
	ev := Step{Kind: Kind(hueseek.PointerMove), Angle: &angle, Distance: &dist}.Resolve(bar)
	if ev.X != 50 || ev.Y != 200 {
		t.Errorf("Resolve() = (%v, %v), want (50, 200)", ev.X, ev.Y)
	}
}

func TestDrag(t *testing.T) {
	rec := &Recorder{}
	bar := newBar(t, rec)
	Drag(45).Play(bar)
	if bar.State() != hueseek.Idle {
		t.Errorf("State() = %v, want idle", bar.State())
	}
	if bar.Angle() != 270 {
		t.Errorf("Angle() = %v, want 270", bar.Angle())
	}
	if len(rec.Records) != 3 {
		t.Errorf("records = %d, want 3", len(rec.Records))
	}
}
