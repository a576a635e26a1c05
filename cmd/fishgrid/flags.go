package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/fishgrid/config"
	"github.com/lixenwraith/fishgrid/logging"
)

// options are the parsed command line; set records which flags were given
type options struct {
	configPath  string
	width       int
	height      int
	seed        uint64
	debug       bool
	metricsAddr string
	mute        bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fishgrid", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fs.IntVar(&opts.width, "width", 0, "Grid width in cells")
	fs.IntVar(&opts.height, "height", 0, "Grid height in cells")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed of the first game, 0 picks one")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+logging.DefaultPath)
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig reads the config file if any, then applies flags given explicitly
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if opts.set["width"] {
		cfg.Grid.Width = opts.width
	}
	if opts.set["height"] {
		cfg.Grid.Height = opts.height
	}
	if opts.set["seed"] {
		cfg.Rules.Seed = opts.seed
	}
	if opts.set["metrics-addr"] {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	if opts.debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = logging.DefaultPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
