package game

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snakebot/ai"
	"snakebot/game/manager"
	"snakebot/game/types"
	"snakebot/logging"
)

// Config holds the settings of a snake session.
type Config struct {
	Grid      types.Grid
	Seed      uint64
	Autopilot bool
	// Cost names the pathfinder cost model, see ai.CostModelByName.
	Cost string
	// Target names the fruit selection strategy, see ai.TargetStrategyByName.
	Target string
}

// Game is a snake session: the current run, the autopilot and the score
// history across restarts.
type Game struct {
	UUID  string
	RunID string

	cfg    Config
	base   log.Logger
	logger log.Logger
	rng    *rand.Rand
	stats  *manager.StateManager

	snake  *Snake
	bot    *ai.Bot
	finder *ai.Pathfinder
	target ai.TargetStrategy

	autopilot bool
	debug     bool
	started   float64
	recorded  bool

	onFruit    func(types.Point)
	onGameOver func(manager.GameRecord)
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithEatHook registers a callback fired whenever the snake eats a fruit.
func WithEatHook(fn func(types.Point)) GameOption {
	return func(g *Game) { g.onFruit = fn }
}

// WithGameOverHook registers a callback fired once per run with its record.
func WithGameOverHook(fn func(manager.GameRecord)) GameOption {
	return func(g *Game) { g.onGameOver = fn }
}

// NewGame builds a session and its first run. It fails on an empty grid or an
// unknown cost model or target strategy.
func NewGame(cfg Config, logger log.Logger, opts ...GameOption) (*Game, error) {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	cost, ok := ai.CostModelByName(cfg.Cost)
	if !ok {
		return nil, fmt.Errorf("unknown cost model %q", cfg.Cost)
	}
	target, ok := ai.TargetStrategyByName(cfg.Target)
	if !ok {
		return nil, fmt.Errorf("unknown target strategy %q", cfg.Target)
	}
	if logger == nil {
		logger = logging.GlobalLogger()
	}

	sessionID := uuid.New().String()
	base := log.With(logger, "session", sessionID)
	g := &Game{
		UUID:      sessionID,
		cfg:       cfg,
		base:      base,
		logger:    log.With(base, "component", "game"),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		stats:     manager.NewStateManager(),
		finder:    ai.NewPathfinder(ai.WithCostModel(cost)),
		target:    target,
		autopilot: cfg.Autopilot,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.newRun(0)
	_ = level.Info(g.logger).Log("msg", "session started", "width", cfg.Grid.Width, "height", cfg.Grid.Height,
		"seed", cfg.Seed, "autopilot", cfg.Autopilot, "cost", cost.Name(), "target", target)
	return g, nil
}

func (g *Game) newRun(t float64) {
	g.RunID = uuid.New().String()
	g.stats.ResetScore()
	g.started = t
	g.recorded = false

	g.snake = NewSnake(g.cfg.Grid,
		WithRand(g.rng),
		WithStats(g.stats),
		WithFruitHook(g.onFruit),
		WithSnakeLogger(log.With(g.base, "component", "snake", "run", g.RunID)),
	)
	g.bot = ai.NewBot(g.snake,
		ai.WithPathfinder(g.finder),
		ai.WithTarget(g.target),
		ai.WithLogger(log.With(g.base, "component", "bot", "run", g.RunID)),
	)
	if g.autopilot {
		g.snake.SetController(g.bot)
	}
}

// Update handles this frame's keys and advances the run to time t.
func (g *Game) Update(in Input, t, dt float64) {
	if in.IsKeyPressed(KeyRestart) && g.snake.IsGameOver() {
		g.newRun(t)
		_ = level.Info(g.logger).Log("msg", "restart", "run", g.RunID)
	}
	if in.IsKeyPressed(KeyPause) {
		g.snake.TogglePause()
	}
	if in.IsKeyPressed(KeyAutopilot) {
		g.SetAutopilot(!g.autopilot)
	}
	if in.IsKeyPressed(KeyDebug) {
		g.debug = !g.debug
	}

	if !g.autopilot {
		g.snake.Steer(steerIntent(in))
	}
	g.snake.Update(t)

	if g.snake.IsGameOver() && !g.recorded {
		g.record(t)
	}
}

// SetAutopilot hands steering to the bot or back to the player.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
	if on {
		g.snake.SetController(g.bot)
	} else {
		g.snake.SetController(nil)
	}
	_ = level.Info(g.logger).Log("msg", "autopilot", "enabled", on)
}

func (g *Game) record(t float64) {
	g.recorded = true
	rec := manager.GameRecord{
		ID:             g.RunID,
		Score:          g.snake.Score(),
		Autopilot:      g.autopilot,
		Duration:       time.Duration((t - g.started) * float64(time.Second)),
		Cause:          g.snake.Cause(),
		FruitFallbacks: g.snake.FruitFallbacks(),
	}
	g.stats.AddToHistory(rec)
	_ = level.Info(g.logger).Log("msg", "run recorded", "run", rec.ID, "score", rec.Score,
		"moves", g.snake.Moves(), "duration", rec.Duration, "cause", rec.Cause,
		"fruit_fallbacks", rec.FruitFallbacks, "games", g.stats.GamesPlayed())
	if g.onGameOver != nil {
		g.onGameOver(rec)
	}
}

func (g *Game) Snake() *Snake { return g.snake }

func (g *Game) Bot() *ai.Bot { return g.bot }

func (g *Game) Autopilot() bool { return g.autopilot }

// Debug reports whether the path overlay is enabled.
func (g *Game) Debug() bool { return g.debug }

func (g *Game) Grid() types.Grid { return g.cfg.Grid }

func (g *Game) Stats() *manager.StateManager { return g.stats }
