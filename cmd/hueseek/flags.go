package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/config"
)

// pickerFlags are the picker settings shared by several commands. Values
// given on the command line override those read from -config.
type pickerFlags struct {
	configPath string
	barWidth   int
	style      string
	variant    string
	width      int
	height     int
	verbose    bool
}

func (p *pickerFlags) register(f *flag.FlagSet, defaults config.Config) {
	f.StringVar(&p.configPath, "config", "", "YAML settings file")
	f.IntVar(&p.barWidth, "bar", defaults.BarWidth, "ring stroke width in pixels")
	f.StringVar(&p.style, "style", defaults.Style.String(), "ring style: inset, centered or outset")
	f.StringVar(&p.variant, "variant", defaults.Variant.String(), "engine variant: revised or legacy")
	f.IntVar(&p.width, "width", defaults.Width, "widget width in pixels")
	f.IntVar(&p.height, "height", defaults.Height, "widget height in pixels")
	f.BoolVar(&p.verbose, "v", false, "log engine decisions to stderr")
}

// resolve merges the config file with explicitly set flags.
func (p *pickerFlags) resolve(f *flag.FlagSet) (config.Config, error) {
	setupLogger(p.verbose)

	cfg := config.Default()
	if p.configPath != "" {
		var err error
		cfg, err = config.Load(p.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "bar":
			cfg.BarWidth = p.barWidth
		case "width":
			cfg.Width = p.width
		case "height":
			cfg.Height = p.height
		case "style":
			cfg.Style, err = hueseek.ParseStyle(p.style)
		case "variant":
			cfg.Variant, err = hueseek.ParseVariant(p.variant)
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	hueseek.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newBar builds a sized SeekBar from cfg.
func newBar(cfg config.Config, opts ...hueseek.Option) (*hueseek.SeekBar, error) {
	bar, err := hueseek.New(append(cfg.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	bar.Resize(cfg.Width, cfg.Height)
	return bar, nil
}
