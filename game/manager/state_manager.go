package manager

import "sort"

const maxScores = 50 // scores kept in the history

// GameStats is a point-in-time copy of the session counters.
type GameStats struct {
	Score        int
	HighScore    int
	Resets       int
	Frames       int
	ScoreHistory []int
}

// StateManager keeps per-session counters in memory. Nothing is persisted.
type StateManager struct {
	score        int
	highScore    int
	resets       int
	frames       int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxScores),
	}
}

// RecordApple counts an apple eaten by the current snake.
func (sm *StateManager) RecordApple() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// RecordReset closes the current life and returns its score.
func (sm *StateManager) RecordReset() int {
	score := sm.score
	sm.resets++
	sm.AddToHistory(score)
	sm.score = 0
	return score
}

func (sm *StateManager) RecordFrame() {
	sm.frames++
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

func (sm *StateManager) Stats() GameStats {
	return GameStats{
		Score:        sm.score,
		HighScore:    sm.highScore,
		Resets:       sm.resets,
		Frames:       sm.frames,
		ScoreHistory: sm.GetScoreHistory(),
	}
}

// AverageScore is the mean score of the finished lives in the history.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, score := range sm.scoreHistory {
		total += score
	}
	return float64(total) / float64(len(sm.scoreHistory))
}

// MedianScore is the median score of the finished lives in the history.
func (sm *StateManager) MedianScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	scores := sm.GetScoreHistory()
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}
