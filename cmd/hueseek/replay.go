package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/config"
	"github.com/gogpu/hueseek/internal/palette"
	"github.com/gogpu/hueseek/internal/script"
)

type replayCommand struct {
	picker pickerFlags
	output string
}

func (*replayCommand) Name() string     { return "replay" }
func (*replayCommand) Synopsis() string { return "Replay gesture scripts and print listener events." }
func (*replayCommand) Usage() string {
	return `replay [-o final.png] [picker flags] <script.yaml>...:
	Plays each script against a fresh picker and prints every start, move
	and end notification with its wheel angle and color.
`
}

func (cmd *replayCommand) SetFlags(f *flag.FlagSet) {
	cmd.picker.register(f, config.Default())
	f.StringVar(&cmd.output, "o", "", "render the final state of the last script to this PNG")
}

func (cmd *replayCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "missing script file")
		return subcommands.ExitUsageError
	}
	cfg, err := cmd.picker.resolve(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var last *hueseek.SeekBar
	for _, path := range f.Args() {
		s, err := script.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		rec := &script.Recorder{}
		bar, err := newBar(cfg, hueseek.WithListener(rec))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		s.Play(bar)

		name := s.Name
		if name == "" {
			name = path
		}
		fmt.Printf("# %s\n", name)
		for _, r := range rec.Records {
			fmt.Printf("%-5s %s\n", r.Event, palette.Describe(r.Angle))
		}
		last = bar
	}

	if cmd.output != "" && last != nil {
		if err := renderFile(cmd.output, last, cfg, true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
