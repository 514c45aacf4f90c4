package game

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"

	"snakebot/game/entity"
	"snakebot/game/manager"
	"snakebot/game/types"
	"snakebot/logging"
)

// State is the lifecycle stage of a Snake.
type State int

const (
	Active State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "active"
	}
}

// Controller steers a snake in place of the player. It runs once per move,
// right before the snake advances.
type Controller interface {
	Update()
}

// Snake is the single-player game state machine: movement on a fixed cadence,
// collisions, fruit and score. It is not safe for concurrent use.
type Snake struct {
	grid       types.Grid
	body       *entity.Snake
	collisions *manager.CollisionManager
	fruits     *manager.FruitManager
	stats      *manager.StateManager

	state    State
	cause    manager.CollisionType
	nextTick float64
	moves    int

	controller Controller
	onFruit    func(types.Point)
	logger     log.Logger
}

type snakeOptions struct {
	start     types.Point
	startSet  bool
	direction types.Direction
	length    int
	fruits    []types.Point
	rng       *rand.Rand
	stats     *manager.StateManager
	onFruit   func(types.Point)
	logger    log.Logger
}

// SnakeOption configures a Snake at construction.
type SnakeOption func(*snakeOptions)

// WithStart places the head and sets the initial heading.
func WithStart(head types.Point, dir types.Direction) SnakeOption {
	return func(o *snakeOptions) {
		o.start = head
		o.startSet = true
		o.direction = dir
	}
}

// WithLength sets the initial tail length; it never goes below MinSnakeLength.
func WithLength(n int) SnakeOption {
	return func(o *snakeOptions) { o.length = n }
}

// WithFruits replaces the initial centre fruit.
func WithFruits(fruits ...types.Point) SnakeOption {
	return func(o *snakeOptions) { o.fruits = fruits }
}

// WithRand injects the generator used for fruit placement.
func WithRand(rng *rand.Rand) SnakeOption {
	return func(o *snakeOptions) { o.rng = rng }
}

// WithStats shares a score keeper across runs so the high score survives a restart.
func WithStats(sm *manager.StateManager) SnakeOption {
	return func(o *snakeOptions) { o.stats = sm }
}

// WithFruitHook registers a callback fired after a fruit has been eaten.
func WithFruitHook(fn func(types.Point)) SnakeOption {
	return func(o *snakeOptions) { o.onFruit = fn }
}

func WithSnakeLogger(logger log.Logger) SnakeOption {
	return func(o *snakeOptions) { o.logger = logger }
}

// NewSnake creates a snake on grid. By default the head sits on (8,0), clamped
// into the grid, heading east with the tail trailing behind it, and a single
// fruit waits in the centre of the grid.
func NewSnake(grid types.Grid, opts ...SnakeOption) *Snake {
	o := snakeOptions{
		start:     types.Point{X: 8, Y: 0},
		direction: types.East,
		length:    types.MinSnakeLength,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.startSet {
		o.start.X = min(o.start.X, max(grid.Width-1, 0))
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(1)))
	}
	if o.stats == nil {
		o.stats = manager.NewStateManager()
	}
	if o.logger == nil {
		o.logger = logging.GlobalLogger()
	}

	collisions := manager.NewCollisionManager(grid)
	s := &Snake{
		grid:       grid,
		body:       entity.NewSnake(o.start, o.direction, o.length, grid),
		collisions: collisions,
		fruits:     manager.NewFruitManager(grid, collisions, o.rng),
		stats:      o.stats,
		state:      Active,
		onFruit:    o.onFruit,
		logger:     o.logger,
	}

	if o.fruits == nil {
		o.fruits = []types.Point{grid.Center()}
	}
	for _, f := range o.fruits {
		s.fruits.AddFruit(f)
	}
	return s
}

// SetController delegates steering to c. A nil controller hands control back to Steer.
func (s *Snake) SetController(c Controller) {
	s.controller = c
}

// Update advances the state machine to time t (seconds, monotonic).
//
// The game-over check runs first. While paused nothing moves. Otherwise the
// snake moves one tile whenever t has reached the scheduled tick, then the next
// tick is scheduled TickInterval seconds later.
func (s *Snake) Update(t float64) {
	if s.state == GameOver || s.checkGameOver() {
		return
	}
	if s.state == Paused {
		return
	}
	if t < s.nextTick {
		return
	}

	if s.controller != nil {
		s.controller.Update()
	}

	s.body.Advance()
	s.moves++

	// Caught here as well so the head is never reported out of bounds while active.
	if !s.checkGameOver() {
		s.resolveFruit()
	}

	s.nextTick = t + types.TickInterval
}

// Steer applies a player intent of one tile along dx, dy. It is ignored when the
// intent is empty or points back onto the neck.
func (s *Snake) Steer(dx, dy int) {
	if s.state != Active || (dx == 0 && dy == 0) {
		return
	}
	head := s.body.Head
	dir := types.DirectionBetween(head, types.Point{X: head.X + dx, Y: head.Y + dy}, 0)
	// Diagonal input collapses onto one axis; check the move that results.
	if head.Add(dir.ToPoint()) == s.body.Neck() {
		return
	}
	s.body.Direction = dir
}

// SetDirection is the controller setter. It performs no reverse check.
func (s *Snake) SetDirection(d types.Direction) {
	s.body.Direction = d
}

// TogglePause switches between Active and Paused. It has no effect after game over.
func (s *Snake) TogglePause() {
	switch s.state {
	case Active:
		s.state = Paused
	case Paused:
		s.state = Active
	}
}

func (s *Snake) checkGameOver() bool {
	if s.state == GameOver {
		return true
	}
	if cause := s.collisions.CheckSnake(s.body); cause != manager.NoCollision {
		s.state = GameOver
		s.cause = cause
		_ = level.Info(s.logger).Log("msg", "game over", "cause", cause, "score", s.stats.GetScore(),
			"head_x", s.body.Head.X, "head_y", s.body.Head.Y)
		return true
	}
	return false
}

func (s *Snake) resolveFruit() {
	i := s.collisions.CheckFruitCollisions(s.body.Head, s.fruits.GetFruitList())
	if i < 0 {
		return
	}
	eaten := s.fruits.GetFruitList()[i]
	s.fruits.RemoveFruit(eaten)
	s.stats.AddPoint()

	if fruit, ok := s.fruits.Spawn(s.body); !ok {
		_ = level.Debug(s.logger).Log("msg", "fruit placed on occupied tile", "x", fruit.X, "y", fruit.Y)
	}
	s.body.Grow()

	if s.onFruit != nil {
		s.onFruit(eaten)
	}
}

func (s *Snake) Grid() types.Grid { return s.grid }

func (s *Snake) Head() types.Point { return s.body.Head }

func (s *Snake) Direction() types.Direction { return s.body.Direction }

// Tail returns a copy of the tail, segment behind the head first.
func (s *Snake) Tail() []types.Point {
	return append([]types.Point(nil), s.body.Tail...)
}

// Segments returns the head followed by the tail.
func (s *Snake) Segments() []types.Point { return s.body.Segments() }

// Fruits returns a copy of the fruits in spawn order.
func (s *Snake) Fruits() []types.Point {
	return append([]types.Point(nil), s.fruits.GetFruitList()...)
}

func (s *Snake) Score() int { return s.stats.GetScore() }

func (s *Snake) HighScore() int { return s.stats.GetHighScore() }

func (s *Snake) State() State { return s.state }

// IsGameOver reports whether the snake has crashed.
func (s *Snake) IsGameOver() bool { return s.state == GameOver }

// Cause returns what ended the game, NoCollision while it is running.
func (s *Snake) Cause() manager.CollisionType { return s.cause }

// Moves counts the ticks the snake has advanced.
func (s *Snake) Moves() int { return s.moves }

// NextTick returns the time of the next scheduled move.
func (s *Snake) NextTick() float64 { return s.nextTick }

// FruitFallbacks counts fruits that had to be placed on an occupied tile.
func (s *Snake) FruitFallbacks() int { return s.fruits.Fallbacks() }
