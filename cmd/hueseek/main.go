// Command hueseek inspects and drives the hue picker engine from the
// command line: it maps wheel angles to colors, prints geometry, renders
// PNG snapshots, replays gesture scripts and runs a terminal picker.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	cmds := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmds.Register(cmds.HelpCommand(), "")
	cmds.Register(cmds.FlagsCommand(), "")

	cmds.Register(&colorCommand{}, "engine")
	cmds.Register(&geometryCommand{}, "engine")
	cmds.Register(&renderCommand{}, "output")
	cmds.Register(&replayCommand{}, "output")
	cmds.Register(&termCommand{}, "interactive")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(cmds.Execute(ctx)))
}
