package service

import (
	"context"
	"io"
	"sync"
	"time"

	"telephysio/internal/dto"
	"telephysio/internal/exercise"
	"telephysio/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownExercise = exercise.ErrUnknownExercise
	ErrSessionNotFound = exercise.ErrSessionNotFound
)

type ExerciseService struct {
	store   exercise.Store
	tracker *exercise.Tracker
	// Serializes load-observe-save so concurrent frames are not lost.
	mu     sync.Mutex
	logger *zap.Logger
}

func NewExerciseService(store exercise.Store, tracker *exercise.Tracker, logger *zap.Logger) *ExerciseService {
	return &ExerciseService{
		store:   store,
		tracker: tracker,
		logger:  logger,
	}
}

func (s *ExerciseService) Catalogue() []string {
	return append([]string(nil), exercise.Catalogue...)
}

func (s *ExerciseService) Start(ctx context.Context, userID, name string) (*dto.SessionResponse, error) {
	session, err := s.tracker.Start(uuid.NewString(), userID, name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Exercise session started",
		zap.String("session_id", session.ID),
		zap.String("exercise", name),
		zap.Bool("counted", exercise.Counted(name)),
	)
	return toSessionResponse(session), nil
}

// PostFrame applies one landmark frame to the caller's session.
func (s *ExerciseService) PostFrame(ctx context.Context, userID, id string, req *dto.FrameRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	reps := s.tracker.Observe(session, exercise.Frame{Pose: req.Pose, Hands: req.Hands})
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	if reps > 0 {
		metrics.ExerciseReps.WithLabelValues(session.Exercise).Add(float64(reps))
	}
	return toSessionResponse(session), nil
}

func (s *ExerciseService) Get(ctx context.Context, userID, id string) (*dto.SessionResponse, error) {
	session, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Report writes the session's periodic samples as CSV.
func (s *ExerciseService) Report(ctx context.Context, userID, id string, w io.Writer) error {
	session, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	return exercise.WriteReport(w, session)
}

// Sessions owned by another user are reported as missing.
func (s *ExerciseService) load(ctx context.Context, userID, id string) (*exercise.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func toSessionResponse(s *exercise.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:           s.ID,
		Exercise:     s.Exercise,
		Stage:        s.Stage,
		Reps:         s.Reps,
		Points:       s.Points,
		Level:        s.Level,
		Progress:     s.Progress,
		Achievements: s.Achievements,
		Prediction:   s.Prediction(),
		StartedAt:    s.StartedAt.Format(time.RFC3339),
	}
}
