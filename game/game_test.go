package game

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/game/manager"
	"snakebot/game/types"
	"snakebot/logging"
)

func newTestGame(t *testing.T, cfg Config, opts ...GameOption) (*Game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	if cfg.Grid == (types.Grid{}) {
		cfg.Grid = types.Grid{Width: 10, Height: 10}
	}
	g, err := NewGame(cfg, log.NewLogfmtLogger(&buf), opts...)
	require.NoError(t, err)
	return g, &buf
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty grid", Config{}},
		{"cost", Config{Grid: types.Grid{Width: 5, Height: 5}, Cost: "euclid"}},
		{"target", Config{Grid: types.Grid{Width: 5, Height: 5}, Target: "random"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGame(tt.cfg, nil)
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}

func TestNilLoggerFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.GlobalLogger()
	logging.SetGlobalLogger(log.NewLogfmtLogger(&buf))
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })

	g, err := NewGame(Config{Grid: types.Grid{Width: 10, Height: 10}}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="session started"`)
	assert.Contains(t, buf.String(), "session="+g.UUID)
}

func TestManualSteering(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	var in KeyState

	in.Hold(KeyDown)
	g.Update(&in, 0, 0)
	in.EndFrame()

	assert.Equal(t, types.South, g.Snake().Direction())
	assert.Equal(t, pt(8, 1), g.Snake().Head())
}

func TestTwoHeldKeysCannotReverse(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	var in KeyState

	in.Hold(KeyDown)
	g.Update(&in, 0, 0)
	in.EndFrame()
	require.Equal(t, pt(8, 1), g.Snake().Head())

	// Left+Up buckets to North, back onto the neck at (8,0).
	in.Hold(KeyLeft)
	in.Hold(KeyUp)
	g.Update(&in, tickTime(1), 0)
	in.EndFrame()

	assert.False(t, g.Snake().IsGameOver())
	assert.Equal(t, types.South, g.Snake().Direction())
	assert.Equal(t, pt(8, 2), g.Snake().Head())
}

func TestSteeringIgnoredUnderAutopilot(t *testing.T) {
	g, _ := newTestGame(t, Config{Autopilot: true})
	var in KeyState

	// The bot heads for the centre fruit; the player asks for north into the wall.
	in.Hold(KeyUp)
	g.Update(&in, 0, 0)

	assert.True(t, g.Autopilot())
	assert.Equal(t, Active, g.Snake().State())
	assert.Equal(t, pt(8, 1), g.Snake().Head())
	assert.Equal(t, pt(8, 1), g.Bot().LastPath()[len(g.Bot().LastPath())-2])
}

func TestToggleKeys(t *testing.T) {
	g, buf := newTestGame(t, Config{})
	var in KeyState

	in.Press(KeyAutopilot)
	in.Press(KeyDebug)
	in.Press(KeyPause)
	g.Update(&in, 0, 0)
	in.EndFrame()

	assert.True(t, g.Autopilot())
	assert.True(t, g.Debug())
	assert.Equal(t, Paused, g.Snake().State())
	assert.Equal(t, pt(8, 0), g.Snake().Head())
	assert.Contains(t, buf.String(), `msg=autopilot enabled=true`)

	in.Press(KeyPause)
	g.Update(&in, 1, 0)
	in.EndFrame()
	assert.Equal(t, Active, g.Snake().State())
	assert.NotEqual(t, pt(8, 0), g.Snake().Head())
}

func TestGameOverIsRecordedOnceAndRestarts(t *testing.T) {
	g, buf := newTestGame(t, Config{})
	var in KeyState
	firstRun := g.RunID

	g.Update(&in, tickTime(0), 0)
	g.Update(&in, tickTime(1), 0)
	require.True(t, g.Snake().IsGameOver())
	g.Update(&in, tickTime(2), 0)

	require.Equal(t, 1, g.Stats().GamesPlayed())
	rec := g.Stats().GetScoreHistory()[0]
	assert.Equal(t, firstRun, rec.ID)
	assert.Equal(t, manager.WallCollision, rec.Cause)
	assert.Equal(t, g.Snake().FruitFallbacks(), rec.FruitFallbacks)
	assert.False(t, rec.Autopilot)
	assert.InDelta(t, tickTime(1), rec.Duration.Seconds(), 1e-6)

	out := buf.String()
	assert.Contains(t, out, "session="+g.UUID)
	assert.Contains(t, out, `msg="run recorded"`)
	assert.Contains(t, out, "cause=wall")
	assert.Contains(t, out, "fruit_fallbacks=0")

	in.Press(KeyRestart)
	g.Update(&in, 5, 0)
	in.EndFrame()

	assert.NotEqual(t, firstRun, g.RunID)
	assert.False(t, g.Snake().IsGameOver())
	assert.Equal(t, 1, g.Stats().GamesPlayed())
	assert.Equal(t, pt(9, 0), g.Snake().Head(), "the new run moves on its first frame")
}

func TestGameOverHookFiresOncePerRun(t *testing.T) {
	var records []manager.GameRecord
	g, _ := newTestGame(t, Config{}, WithGameOverHook(func(rec manager.GameRecord) {
		records = append(records, rec)
	}))
	var in KeyState

	for i := 0; i < 4; i++ {
		g.Update(&in, tickTime(i), 0)
	}
	require.Len(t, records, 1)
	assert.Equal(t, g.RunID, records[0].ID)
	assert.Equal(t, manager.WallCollision, records[0].Cause)
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g, _ := newTestGame(t, Config{Grid: types.Grid{Width: 20, Height: 20}})
	var in KeyState
	run := g.RunID

	in.Press(KeyRestart)
	g.Update(&in, 0, 0)

	assert.Equal(t, run, g.RunID)
	assert.Equal(t, 1, g.Snake().Moves())
}

func TestEatHookAndHighScoreSurviveRestart(t *testing.T) {
	eaten := 0
	g, _ := newTestGame(t, Config{Autopilot: true, Seed: 9}, WithEatHook(func(types.Point) { eaten++ }))
	var in KeyState

	for i := 0; i < 400 && !g.Snake().IsGameOver(); i++ {
		g.Update(&in, tickTime(i), 0)
	}
	require.Positive(t, eaten)
	best := g.Stats().GetHighScore()
	assert.Equal(t, eaten, best)

	if g.Snake().IsGameOver() {
		in.Press(KeyRestart)
		g.Update(&in, 1000, 0)
		assert.Equal(t, 0, g.Snake().Score())
		assert.Equal(t, best, g.Snake().HighScore())
	}
}

func TestSummary(t *testing.T) {
	g, _ := newTestGame(t, Config{})
	assert.Zero(t, g.Summary().GamesPlayed)

	for _, r := range []manager.GameRecord{
		{ID: "a", Score: 4, Duration: 2 * time.Second, FruitFallbacks: 1},
		{ID: "b", Score: 1, Duration: 6 * time.Second},
		{ID: "c", Score: 9, Duration: 4 * time.Second},
		{ID: "d", Score: 2, Duration: 4 * time.Second, FruitFallbacks: 2},
	} {
		g.Stats().AddToHistory(r)
	}

	s := g.Summary()
	assert.Equal(t, g.UUID, s.Session)
	assert.Equal(t, 4, s.GamesPlayed)
	assert.Equal(t, 9, s.HighScore)
	assert.Equal(t, 1, s.MinScore)
	assert.InDelta(t, 3.0, s.MedianScore, 1e-9)
	assert.InDelta(t, 4.0, s.AverageScore, 1e-9)
	assert.InDelta(t, 4.0, s.AverageDuration, 1e-9)
	assert.InDelta(t, 6.0, s.MaxDuration, 1e-9)
	assert.Equal(t, 3, s.FruitFallbacks)

	data, err := s.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cause": "none"`)
	assert.Contains(t, string(data), `"duration": 6`, "run durations use seconds like the totals")
	assert.Contains(t, string(data), `"fruitFallbacks": 2`)
}

func TestKeyState(t *testing.T) {
	var ks KeyState
	ks.Press(KeyRun)
	ks.Hold(KeyLeft)
	ks.SetPointer(Pointer{X: 3, Y: 4, Down: true})

	assert.True(t, ks.IsKeyPressed(KeyRun))
	assert.True(t, ks.IsKeyDown(KeyRun))
	assert.True(t, ks.IsKeyDown(KeyLeft))
	assert.False(t, ks.IsKeyPressed(KeyLeft))
	assert.False(t, ks.IsKeyDown(keyCount))

	ks.EndFrame()
	assert.False(t, ks.IsKeyPressed(KeyRun))
	assert.False(t, ks.IsKeyDown(KeyLeft))
	assert.Equal(t, Pointer{X: 3, Y: 4}, ks.Pointer())
}

func TestSteerIntentPrecedence(t *testing.T) {
	var ks KeyState
	ks.Hold(KeyLeft)
	ks.Hold(KeyRight)
	ks.Hold(KeyUp)
	ks.Hold(KeyDown)

	dx, dy := steerIntent(&ks)
	assert.Equal(t, 1, dx)
	assert.Equal(t, 1, dy)
}
