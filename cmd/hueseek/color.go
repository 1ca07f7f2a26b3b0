package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/palette"
)

type colorCommand struct {
	degrees bool
}

func (*colorCommand) Name() string     { return "color" }
func (*colorCommand) Synopsis() string { return "Map wheel angles to colors." }
func (*colorCommand) Usage() string {
	return `color [-deg] <angle>...:
	Prints the color for each wheel angle (0 at the top of the ring,
	180 at the right, 360 at the bottom). With -deg the arguments are
	geometric degrees and are quantized first.
`
}

func (cmd *colorCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.degrees, "deg", false, "arguments are geometric degrees")
}

func (cmd *colorCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "missing angle")
		return subcommands.ExitUsageError
	}
	for _, arg := range f.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid angle %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		q := hueseek.WheelAngle(v)
		if cmd.degrees {
			q = hueseek.Quantize(v * math.Pi / 180)
		}
		fmt.Println(palette.Describe(q))
	}
	return subcommands.ExitSuccess
}
