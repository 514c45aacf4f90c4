package ai

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"snakebot/game/types"
	"snakebot/logging"
)

// Board is the view of a snake the Bot steers. The Bot only reads it and
// writes back through SetDirection.
type Board interface {
	Grid() types.Grid
	Head() types.Point
	// Segments returns the head followed by every tail segment.
	Segments() []types.Point
	Fruits() []types.Point
	SetDirection(types.Direction)
}

// TargetStrategy picks the fruit the Bot paths towards.
type TargetStrategy int

const (
	// TargetFirst always chases the first fruit in spawn order.
	TargetFirst TargetStrategy = iota
	// TargetNearest chases the fruit with the lowest Manhattan distance to the head.
	TargetNearest
)

func (s TargetStrategy) String() string {
	if s == TargetNearest {
		return "nearest"
	}
	return "first"
}

// TargetStrategyByName resolves a strategy from its configuration name.
func TargetStrategyByName(name string) (TargetStrategy, bool) {
	switch name {
	case "", "first":
		return TargetFirst, true
	case "nearest":
		return TargetNearest, true
	}
	return TargetFirst, false
}

// Bot is the autopilot: every tick it searches a path from the head to a fruit
// around the snake's own body and turns towards the first step.
type Bot struct {
	board  Board
	finder *Pathfinder
	target TargetStrategy
	logger log.Logger

	lastPath []types.Point
}

// BotOption configures a Bot.
type BotOption func(*Bot)

func WithTarget(s TargetStrategy) BotOption {
	return func(b *Bot) { b.target = s }
}

// WithLogger routes the Bot's diagnostics, such as a failed search, to logger.
func WithLogger(logger log.Logger) BotOption {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPathfinder replaces the default LegacyCost pathfinder.
func WithPathfinder(p *Pathfinder) BotOption {
	return func(b *Bot) {
		if p != nil {
			b.finder = p
		}
	}
}

func NewBot(board Board, opts ...BotOption) *Bot {
	b := &Bot{
		board:  board,
		finder: NewPathfinder(),
		logger: logging.GlobalLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Update runs one search and steers the board. When no path exists the
// current heading is kept.
func (b *Bot) Update() {
	fruits := b.board.Fruits()
	if len(fruits) == 0 {
		b.lastPath = nil
		return
	}

	segments := b.board.Segments()
	head := b.board.Head()
	fruit := b.pickFruit(head, fruits)

	b.finder.Init(b.board.Grid(), segments...)
	path := b.finder.Find(head, fruit)
	b.lastPath = path

	if len(path) < 2 {
		_ = level.Debug(b.logger).Log(
			"msg", "no solution",
			"head_x", head.X, "head_y", head.Y,
			"fruit_x", fruit.X, "fruit_y", fruit.Y,
			"cost", b.finder.CostModel().Name(),
		)
		return
	}

	b.board.SetDirection(types.DirectionBetween(head, path[len(path)-2], 0))
}

// LastPath returns the path computed by the latest Update, destination first.
// It is nil when the last search failed.
func (b *Bot) LastPath() []types.Point {
	return b.lastPath
}

func (b *Bot) pickFruit(head types.Point, fruits []types.Point) types.Point {
	if b.target != TargetNearest {
		return fruits[0]
	}
	best := fruits[0]
	bestDist := types.ManhattanDistance(head, best)
	for _, f := range fruits[1:] {
		if d := types.ManhattanDistance(head, f); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best
}
