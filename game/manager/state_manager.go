package manager

import (
	"encoding/json"
	"time"
)

// GameRecord describes one finished run. FruitFallbacks counts fruits that
// had to be placed on an occupied tile.
type GameRecord struct {
	ID             string        `json:"id"`
	Score          int           `json:"score"`
	Autopilot      bool          `json:"autopilot"`
	Duration       time.Duration `json:"duration"`
	Cause          CollisionType `json:"cause"`
	FruitFallbacks int           `json:"fruitFallbacks"`
}

// MarshalJSON writes Duration as float seconds.
func (r GameRecord) MarshalJSON() ([]byte, error) {
	type record GameRecord
	return json.Marshal(struct {
		record
		Duration float64 `json:"duration"`
	}{record(r), r.Duration.Seconds()})
}

// StateManager tracks the score of the current run and the history of the
// session. Nothing is written to disk.
type StateManager struct {
	score        int
	highScore    int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0),
	}
}

// AddPoint increments the current score and lifts the high score with it.
func (sm *StateManager) AddPoint() int {
	sm.score++
	sm.UpdateScore(sm.score)
	return sm.score
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// ResetScore starts a new run; the high score is kept.
func (sm *StateManager) ResetScore() {
	sm.score = 0
}

func (sm *StateManager) AddToHistory(record GameRecord) {
	sm.UpdateScore(record.Score)
	sm.scoreHistory = append(sm.scoreHistory, record)
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	return sm.scoreHistory
}

// GamesPlayed returns the number of finished runs.
func (sm *StateManager) GamesPlayed() int {
	return len(sm.scoreHistory)
}

// AverageScore returns the mean score over finished runs, 0 when there are none.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.scoreHistory {
		total += r.Score
	}
	return float64(total) / float64(len(sm.scoreHistory))
}
