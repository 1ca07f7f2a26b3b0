package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/subcommands"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/config"
	"github.com/gogpu/hueseek/internal/palette"
)

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers one widget pixel across and cellHeight pixels down.
const cellHeight = 2

type termCommand struct {
	picker pickerFlags
}

func (*termCommand) Name() string     { return "term" }
func (*termCommand) Synopsis() string { return "Run the picker in the terminal." }
func (*termCommand) Usage() string {
	return `term [picker flags]:
	Draws the ring with terminal cells and lets you drag the selector with
	the mouse. The widget fills the terminal; -width and -height are ignored.
	Press q, Esc or Ctrl-C to quit.
`
}

func (cmd *termCommand) SetFlags(f *flag.FlagSet) {
	defaults := config.Default()
	defaults.BarWidth = 2
	cmd.picker.register(f, defaults)
}

func (cmd *termCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := cmd.picker.resolve(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	v := &termView{}
	v.bar, err = hueseek.New(append(cfg.Options(), hueseek.WithInvalidator(v.markDirty))...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	v.screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := v.screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer v.screen.Fini()
	v.screen.EnableMouse()

	v.resize()

	for {
		if ctx.Err() != nil {
			return subcommands.ExitSuccess
		}
		if v.dirty {
			v.draw()
		}
		if !v.handle(v.screen.PollEvent()) {
			return subcommands.ExitSuccess
		}
	}
}

type termView struct {
	screen  tcell.Screen
	bar     *hueseek.SeekBar
	pressed bool
	dirty   bool
}

func (v *termView) markDirty() { v.dirty = true }

// resize sizes the widget to the terminal, keeping the last row for the
// status line.
func (v *termView) resize() {
	cols, rows := v.screen.Size()
	v.bar.Resize(cols, max(rows-1, 1)*cellHeight)
	v.screen.Clear()
}

// handle processes one terminal event and reports whether to keep running.
func (v *termView) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellToPixel(col, row)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !v.pressed:
			v.pressed = true
			v.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerDown, X: x, Y: y})
		case down:
			v.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerMove, X: x, Y: y})
		case v.pressed:
			v.pressed = false
			v.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerUp, X: x, Y: y})
			v.dirty = true
		}
	}
	return true
}

// cellToPixel returns the widget pixel at the center of a terminal cell.
func cellToPixel(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row*cellHeight) + cellHeight/2.0
}

// cellColor reports what covers the given pixel: the knob, the ring, or
// nothing.
func cellColor(d hueseek.RenderData, x, y float64) (hueseek.Color, bool) {
	g := d.Geometry
	if math.Hypot(x-d.SelectorX, y-d.SelectorY) <= g.SelectorRadius {
		return d.SelectorColor, true
	}
	half := float64(g.BarWidth)/2 + cellHeight/2.0
	if math.Abs(g.DistanceOf(x, y)-g.Radius) > half {
		return 0, false
	}
	return hueseek.ColorOf(hueseek.Quantize(g.AngleOf(x, y))), true
}

func toTcell(c hueseek.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (v *termView) draw() {
	v.dirty = false
	cols, rows := v.screen.Size()
	d := v.bar.RenderData()

	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			style := tcell.StyleDefault
			x, y := cellToPixel(col, row)
			if c, ok := cellColor(d, x, y); ok {
				style = style.Background(toTcell(c))
			}
			v.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	status := palette.Describe(d.Angle).String()
	if d.Dragging {
		status += " (dragging)"
	}
	style := tcell.StyleDefault.Foreground(toTcell(d.Color))
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(status) {
			r = rune(status[col])
		}
		v.screen.SetContent(col, rows-1, r, nil, style)
	}
	v.screen.Show()
}
