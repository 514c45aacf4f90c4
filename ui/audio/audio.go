// Package audio plays the game's short sound effects.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snakebot/logging"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 60 * time.Millisecond
)

var (
	eatNotes      = []float64{660, 880}
	gameOverNotes = []float64{392, 330, 262}
)

// Chime plays freqs one after another, each for note, at volume in [0, 1].
func Chime(rate beep.SampleRate, freqs []float64, note time.Duration, volume float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", f, err)
		}
		notes = append(notes, beep.Take(rate.N(note), sine))
	}
	return withVolume(beep.Seq(notes...), volume), nil
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// Player owns the speaker. A Player that failed to initialise, or was never
// initialised, ignores every play call.
type Player struct {
	mu     sync.Mutex
	ready  bool
	volume float64
	logger log.Logger
}

func NewPlayer(volume float64, logger log.Logger) *Player {
	if logger == nil {
		logger = logging.GlobalLogger()
	}
	return &Player{volume: volume, logger: logger}
}

// Init opens the speaker with a 100ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

func (p *Player) Eat() { p.play("eat", eatNotes) }

func (p *Player) GameOver() { p.play("game over", gameOverNotes) }

func (p *Player) play(name string, freqs []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s, err := Chime(sampleRate, freqs, noteLength, p.volume)
	if err != nil {
		_ = level.Warn(p.logger).Log("msg", "sound skipped", "sound", name, "err", err)
		return
	}
	speaker.Play(s)
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
