package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"snakebot/ai"
	"snakebot/logging"
)

// Config is the command line configuration.
type Config struct {
	UI        string
	Mode      string
	Width     int
	Height    int
	FPS       int
	Autopilot bool
	Seed      uint64
	Cost      string
	Target    string
	Sound     bool
	Volume    float64
	LogLevel  string
	LogFile   string
	LifeRate  float64
	Summary   bool
}

func DefaultConfig() Config {
	return Config{
		UI:        "raylib",
		Mode:      "snake",
		Width:     1280,
		Height:    720,
		FPS:       60,
		Autopilot: true,
		Cost:      "legacy",
		Target:    "first",
		Sound:     true,
		Volume:    0.4,
		LogLevel:  "info",
		LifeRate:  0,
	}
}

// ParseFlags reads args into a Config starting from DefaultConfig. A zero seed
// is replaced by the current time.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("snakebot", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: raylib or terminal")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "what to run: snake or life")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels (raylib)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels (raylib)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "start with the A* autopilot steering")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	fs.StringVar(&cfg.Cost, "cost", cfg.Cost, "pathfinder cost model: legacy or manhattan")
	fs.StringVar(&cfg.Target, "target", cfg.Target, "fruit the autopilot chases: first or nearest")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound volume between 0 and 1")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, error or off")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file instead of stderr")
	fs.Float64Var(&cfg.LifeRate, "life-rate", cfg.LifeRate, "life generations per second, 0 for one per frame")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print a JSON summary of the session on exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.UI {
	case "raylib", "terminal":
	default:
		errs = append(errs, fmt.Errorf("unknown ui %q", c.UI))
	}
	switch c.Mode {
	case "snake", "life":
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Width < 64 || c.Height < 64 {
		errs = append(errs, fmt.Errorf("window %dx%d is smaller than 64x64", c.Width, c.Height))
	}
	if c.FPS < 1 || c.FPS > 1000 {
		errs = append(errs, fmt.Errorf("fps %d out of range [1, 1000]", c.FPS))
	}
	if _, ok := ai.CostModelByName(c.Cost); !ok {
		errs = append(errs, fmt.Errorf("unknown cost model %q", c.Cost))
	}
	if _, ok := ai.TargetStrategyByName(c.Target); !ok {
		errs = append(errs, fmt.Errorf("unknown target %q", c.Target))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LifeRate < 0 {
		errs = append(errs, fmt.Errorf("negative life rate %.2f", c.LifeRate))
	}
	if c.UI == "terminal" && c.LogFile == "" && c.LogLevel != "off" && c.LogLevel != "none" {
		errs = append(errs, errors.New("the terminal ui needs -log-file or -log-level=off"))
	}
	return errors.Join(errs...)
}
