package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"

	"snakebot/game"
	"snakebot/game/life"
	"snakebot/game/manager"
	"snakebot/game/types"
	"snakebot/logging"
	"snakebot/ui"
	"snakebot/ui/audio"
	"snakebot/ui/layout"
	"snakebot/ui/scene"
	"snakebot/ui/terminal"
)

func main() {
	cfg, err := ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snakebot: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snakebot: %v\n", err)
		os.Exit(1)
	}
}

// frontend is what both the raylib window and the terminal provide.
type frontend interface {
	Size() (int, int)
	Close()
}

func run(cfg Config) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetGlobalLogger(logger)

	var (
		fe    frontend
		grid  types.Grid
		drive func(scene.Screen)
	)
	switch cfg.UI {
	case "terminal":
		t, err := terminal.Open(log.With(logger, "component", "terminal"))
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		w, h := t.Size()
		grid = layout.NewWithTile(w, h, terminal.TileW, terminal.TileH).Grid
		fe, drive = t, func(s scene.Screen) { t.Run(s, cfg.FPS) }
	default:
		win := ui.Open(cfg.Width, cfg.Height, cfg.FPS, "snakebot", log.With(logger, "component", "window"))
		w, h := win.Size()
		grid = layout.New(w, h).Grid
		fe, drive = win, win.Run
	}
	defer fe.Close()

	if grid.Width < 2 || grid.Height < 1 {
		return fmt.Errorf("screen too small for a board: %dx%d tiles", grid.Width, grid.Height)
	}

	switch cfg.Mode {
	case "life":
		rng := rand.New(rand.NewSource(cfg.Seed))
		screen := scene.NewLifeScreen(grid, func(b *life.Life, m life.CellMapper) *life.Sim {
			return life.NewSim(b, rng, m, cfg.LifeRate, log.With(logger, "component", "life"))
		})
		_ = level.Info(logger).Log("msg", "life started", "width", grid.Width, "height", grid.Height)
		drive(screen)
		return nil
	default:
		return runSnake(cfg, grid, logger, drive, os.Stdout)
	}
}

func runSnake(cfg Config, grid types.Grid, logger log.Logger, drive func(scene.Screen), out io.Writer) error {
	player := audio.NewPlayer(cfg.Volume, log.With(logger, "component", "audio"))
	if cfg.Sound {
		if err := player.Init(); err != nil {
			_ = level.Warn(logger).Log("msg", "sound disabled", "err", err)
		}
	}
	defer player.Close()

	g, err := game.NewGame(game.Config{
		Grid:      grid,
		Seed:      cfg.Seed,
		Autopilot: cfg.Autopilot,
		Cost:      cfg.Cost,
		Target:    cfg.Target,
	}, logger,
		game.WithEatHook(func(types.Point) { player.Eat() }),
		game.WithGameOverHook(func(manager.GameRecord) { player.GameOver() }),
	)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	drive(scene.NewSnakeScreen(g))

	summary := g.Summary()
	_ = level.Info(logger).Log("msg", "session ended", "games", summary.GamesPlayed,
		"high_score", summary.HighScore, "average", summary.AverageScore)
	if cfg.Summary {
		data, err := summary.JSON()
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}
