package life

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"

	"snakebot/game"
	"snakebot/logging"
)

// RandomDensity is the share of live cells after a randomize.
const RandomDensity = 0.5

// CellMapper converts a pointer position into a cell, ok is false when the
// pointer is outside the board.
type CellMapper func(p game.Pointer) (x, y int, ok bool)

// Sim drives a Life board from frame input.
//
// R toggles running, N randomizes and starts, C clears and stops. While
// stopped, holding the pointer paints live cells.
type Sim struct {
	board   *Life
	rng     *rand.Rand
	mapCell CellMapper
	logger  log.Logger

	running bool
	debug   bool
	// rate is generations per second; zero steps once per frame.
	rate  float64
	accum float64
}

func NewSim(board *Life, rng *rand.Rand, mapCell CellMapper, rate float64, logger log.Logger) *Sim {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = logging.GlobalLogger()
	}
	return &Sim{
		board:   board,
		rng:     rng,
		mapCell: mapCell,
		logger:  logger,
		debug:   true,
		rate:    max(rate, 0),
	}
}

// Update handles this frame's input and runs as many generations as dt allows.
// It returns the number of generations stepped.
func (s *Sim) Update(in game.Input, t, dt float64) int {
	if in.IsKeyPressed(game.KeyRun) {
		s.running = !s.running
		_ = level.Debug(s.logger).Log("msg", "life running", "running", s.running, "generation", s.board.Generation())
	}
	if in.IsKeyPressed(game.KeyDebug) {
		s.debug = !s.debug
	}
	if in.IsKeyPressed(game.KeyClear) {
		s.board.Clear()
		s.running = false
		s.accum = 0
	}
	if in.IsKeyPressed(game.KeyRandomize) {
		s.board.Randomize(s.rng, RandomDensity)
		s.running = true
		_ = level.Debug(s.logger).Log("msg", "life randomized", "population", s.board.Population())
	}

	if !s.running {
		s.accum = 0
		if p := in.Pointer(); p.Down && s.mapCell != nil {
			if x, y, ok := s.mapCell(p); ok {
				s.board.Set(x, y, true)
			}
		}
		return 0
	}

	if s.rate == 0 {
		s.board.Step()
		return 1
	}
	s.accum += dt * s.rate
	steps := 0
	for s.accum >= 1 {
		s.board.Step()
		s.accum--
		steps++
	}
	return steps
}

func (s *Sim) Board() *Life { return s.board }

func (s *Sim) Running() bool { return s.running }

func (s *Sim) Debug() bool { return s.debug }

func (s *Sim) Rate() float64 { return s.rate }
