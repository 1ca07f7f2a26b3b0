package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/config"
	"github.com/gogpu/hueseek/internal/script"
	"github.com/gogpu/hueseek/ring"
)

type renderCommand struct {
	picker pickerFlags
	output string
	angle  string
	label  bool
}

func (*renderCommand) Name() string     { return "render" }
func (*renderCommand) Synopsis() string { return "Render the picker to a PNG file." }
func (*renderCommand) Usage() string {
	return `render [-o file.png] [-angle degrees] [-label] [picker flags]:
	Paints the ring and selector. With -angle the selector is first dragged
	to the ring point at that geometric angle, exactly as a pointer would.
`
}

func (cmd *renderCommand) SetFlags(f *flag.FlagSet) {
	cmd.picker.register(f, config.Default())
	f.StringVar(&cmd.output, "o", "hueseek.png", "output file")
	f.StringVar(&cmd.angle, "angle", "", "drag the selector to this angle in degrees (-90 top, 90 bottom)")
	f.BoolVar(&cmd.label, "label", false, "draw the wheel angle in the selected color")
}

func (cmd *renderCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := cmd.picker.resolve(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	bar, err := newBar(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if cmd.angle != "" {
		deg, err := strconv.ParseFloat(cmd.angle, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -angle %q: %v\n", cmd.angle, err)
			return subcommands.ExitUsageError
		}
		script.Drag(deg).Play(bar)
	}

	if err := renderFile(cmd.output, bar, cfg, cmd.label); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	hueseek.Logger().Info("rendered", "file", cmd.output, "angle", float64(bar.Angle()), "color", bar.Color().Hex())
	return subcommands.ExitSuccess
}

func renderFile(path string, bar *hueseek.SeekBar, cfg config.Config, label bool) (err error) {
	opts := []ring.Option{ring.WithBackground(hueseek.Color(cfg.Background))}
	if label {
		opts = append(opts, ring.WithLabel(strconv.FormatFloat(float64(bar.Angle()), 'f', -1, 64)))
	}
	img, err := ring.Render(bar.RenderData(), opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return ring.WritePNG(out, img)
}
