package game

import (
	"encoding/json"
	"slices"
	"time"

	"snakebot/game/manager"
)

// Summary aggregates the finished runs of a session.
type Summary struct {
	Session         string               `json:"session"`
	GamesPlayed     int                  `json:"gamesPlayed"`
	HighScore       int                  `json:"highScore"`
	AverageScore    float64              `json:"averageScore"`
	MedianScore     float64              `json:"medianScore"`
	MinScore        int                  `json:"minScore"`
	AverageDuration float64              `json:"averageDuration"`
	MaxDuration     float64              `json:"maxDuration"`
	FruitFallbacks  int                  `json:"fruitFallbacks"`
	Games           []manager.GameRecord `json:"games"`
}

// Summary computes the statistics of every recorded run so far.
func (g *Game) Summary() Summary {
	history := g.stats.GetScoreHistory()
	s := Summary{
		Session:      g.UUID,
		GamesPlayed:  len(history),
		HighScore:    g.stats.GetHighScore(),
		AverageScore: g.stats.AverageScore(),
		Games:        slices.Clone(history),
	}
	if len(history) == 0 {
		return s
	}

	scores := make([]int, len(history))
	var total, longest time.Duration
	for i, r := range history {
		scores[i] = r.Score
		total += r.Duration
		s.FruitFallbacks += r.FruitFallbacks
		longest = max(longest, r.Duration)
	}
	slices.Sort(scores)

	s.MinScore = scores[0]
	s.MedianScore = median(scores)
	s.AverageDuration = total.Seconds() / float64(len(history))
	s.MaxDuration = longest.Seconds()
	return s
}

// JSON encodes the summary for printing at exit.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// median expects sorted input.
func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}
