package exercise

import (
	"fmt"
	"time"
)

// Sample is a periodic snapshot of a session's totals.
type Sample struct {
	Time   time.Time `json:"time"`
	Reps   int       `json:"reps"`
	Points int       `json:"points"`
}

// Session is the tracking state of one user performing one exercise.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Exercise     string    `json:"exercise"`
	Stage        string    `json:"stage"`
	Reps         int       `json:"reps"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	Progress     float64   `json:"progress"`
	Achievements []string  `json:"achievements"`
	Samples      []Sample  `json:"samples"`
	StartedAt    time.Time `json:"started_at"`
	LastSample   time.Time `json:"last_sample"`
}

// History returns the points recorded at each sample.
func (s *Session) History() []int {
	h := make([]int, len(s.Samples))
	for i, smp := range s.Samples {
		h[i] = smp.Points
	}
	return h
}

// Prediction describes the points trend over the recorded samples.
func (s *Session) Prediction() string {
	return Predict(s.History())
}

const (
	PredictionInsufficient = "Not enough data to predict."
	PredictionImproving    = "You're improving! Keep going!"
	PredictionDeclining    = "Your performance is declining. Try to focus!"
	PredictionStable       = "Your progress is stable. Keep it up!"
)

// Predict classifies the mean step between successive history values.
// Fewer than five values is not enough to predict.
func Predict(history []int) string {
	if len(history) < 5 {
		return PredictionInsufficient
	}
	sum := 0
	for i := 1; i < len(history); i++ {
		sum += history[i] - history[i-1]
	}
	switch {
	case sum > 0:
		return PredictionImproving
	case sum < 0:
		return PredictionDeclining
	default:
		return PredictionStable
	}
}

// Tracker applies frames to sessions. It holds no session state itself.
type Tracker struct {
	interval  time.Duration
	maxPoints int
	now       func() time.Time
}

func NewTracker(interval time.Duration, maxPoints int) *Tracker {
	if maxPoints <= 0 {
		maxPoints = 50
	}
	return &Tracker{interval: interval, maxPoints: maxPoints, now: time.Now}
}

// WithClock replaces the time source.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Start opens a session for a catalogue exercise.
func (t *Tracker) Start(id, userID, exercise string) (*Session, error) {
	if !Known(exercise) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, exercise)
	}
	now := t.now()
	return &Session{
		ID:           id,
		UserID:       userID,
		Exercise:     exercise,
		Level:        1,
		Achievements: []string{},
		Samples:      []Sample{},
		StartedAt:    now,
		LastSample:   now,
	}, nil
}

// Observe advances s by one frame and returns the reps the frame completed.
func (t *Tracker) Observe(s *Session, f Frame) int {
	reps := 0
	if c, ok := counters[s.Exercise]; ok {
		s.Stage, reps = c.step(s.Stage, f)
		s.Reps += reps
		s.Points += reps * c.points
	}

	s.Progress = float64(s.Points%t.maxPoints) / float64(t.maxPoints) * 100
	if s.Points/t.maxPoints+1 > s.Level {
		s.Level++
		s.Achievements = append(s.Achievements, fmt.Sprintf("Reached Level %d", s.Level))
	}

	now := t.now()
	if t.interval > 0 && now.Sub(s.LastSample) >= t.interval {
		s.Samples = append(s.Samples, Sample{Time: now, Reps: s.Reps, Points: s.Points})
		s.LastSample = now
	}
	return reps
}
