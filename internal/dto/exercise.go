package dto

import "telephysio/internal/exercise"

type StartSessionRequest struct {
	Exercise string `json:"exercise" validate:"required"`
}

// FrameRequest carries one frame of normalized landmarks. Pose is keyed by
// landmark name; Hands holds one map per detected hand.
type FrameRequest struct {
	Pose  map[string]exercise.Point   `json:"pose"`
	Hands []map[string]exercise.Point `json:"hands"`
}

type SessionResponse struct {
	ID           string   `json:"id"`
	Exercise     string   `json:"exercise"`
	Stage        string   `json:"stage"`
	Reps         int      `json:"reps"`
	Points       int      `json:"points"`
	Level        int      `json:"level"`
	Progress     float64  `json:"progress"`
	Achievements []string `json:"achievements"`
	Prediction   string   `json:"prediction"`
	StartedAt    string   `json:"started_at"`
}
