package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/gogpu/hueseek/internal/config"
	"github.com/gogpu/hueseek/internal/palette"
)

type geometryCommand struct {
	picker pickerFlags
}

func (*geometryCommand) Name() string     { return "geometry" }
func (*geometryCommand) Synopsis() string { return "Print the wheel layout for a widget size." }
func (*geometryCommand) Usage() string {
	return `geometry [-width w] [-height h] [-bar n] [-style s]:
	Prints the wheel center, radius, selector radius, ring bounds and the
	selector's resting position.
`
}

func (cmd *geometryCommand) SetFlags(f *flag.FlagSet) {
	cmd.picker.register(f, config.Default())
}

func (cmd *geometryCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	g := bar.Geometry()
	sx, sy := bar.Selector()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "widget\t%dx%d\n", g.Width, g.Height)
	fmt.Fprintf(tw, "style\t%s\n", palette.Title(g.Style.String()))
	fmt.Fprintf(tw, "variant\t%s\n", palette.Title(bar.Variant().String()))
	fmt.Fprintf(tw, "bar width\t%d\n", g.BarWidth)
	fmt.Fprintf(tw, "center\t(%g, %g)\n", g.CenterX, g.CenterY)
	fmt.Fprintf(tw, "radius\t%g\n", g.Radius)
	fmt.Fprintf(tw, "selector radius\t%g\n", g.SelectorRadius)
	fmt.Fprintf(tw, "bounds\t(%g, %g)-(%g, %g)\n", g.Bounds.Left, g.Bounds.Top, g.Bounds.Right, g.Bounds.Bottom)
	fmt.Fprintf(tw, "selector\t(%.2f, %.2f)\n", sx, sy)
	fmt.Fprintf(tw, "radians\t%.7f\n", bar.Radians())
	fmt.Fprintf(tw, "angle\t%g\n", float64(bar.Angle()))
	fmt.Fprintf(tw, "color\t%s\n", bar.Color().Hex())
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
