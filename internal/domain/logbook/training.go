package logbook

import (
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
)

// DefaultPerformance se asigna cuando el entrenamiento no trae puntuación.
const DefaultPerformance = 5

type Training struct {
	ID            string
	BirdID        string
	StartTime     time.Time
	EndTime       time.Time
	TrainingType  string
	Notes         string
	Performance   int
	StartWeightID string
	EndWeightID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Training) EntryID() string      { return t.ID }
func (t Training) EntryBirdID() string  { return t.BirdID }
func (t Training) Timestamp() time.Time { return t.StartTime }
func (t Training) WeightRefs() []WeightRef {
	return weightRefs(t.StartWeightID, t.EndWeightID)
}

func (t Training) Normalize(now time.Time) (Training, error) {
	id, err := entryID(t.ID)
	if err != nil {
		return Training{}, err
	}
	birdID, err := requireUUID("bird_id", t.BirdID)
	if err != nil {
		return Training{}, err
	}
	if err := sessionSpan(t.StartTime, t.EndTime); err != nil {
		return Training{}, err
	}

	trainingType := strings.TrimSpace(t.TrainingType)
	if trainingType == "" {
		return Training{}, apperrors.Invalid("training_type is required")
	}

	perf := t.Performance
	switch {
	case perf < 0:
		return Training{}, apperrors.Invalid("performance must not be negative")
	case perf == 0:
		perf = DefaultPerformance
	}

	start, err := optionalUUID("start_weight_id", t.StartWeightID)
	if err != nil {
		return Training{}, err
	}
	end, err := optionalUUID("end_weight_id", t.EndWeightID)
	if err != nil {
		return Training{}, err
	}

	return Training{
		ID:            id,
		BirdID:        birdID,
		StartTime:     storedTime(t.StartTime),
		EndTime:       storedTime(t.EndTime),
		TrainingType:  trainingType,
		Notes:         strings.TrimSpace(t.Notes),
		Performance:   perf,
		StartWeightID: start,
		EndWeightID:   end,
		CreatedAt:     storedTime(now),
		UpdatedAt:     storedTime(now),
	}, nil
}

type trainingRequest struct {
	ID            string    `json:"id"`
	BirdID        string    `json:"bird_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TrainingType  string    `json:"training_type"`
	Notes         string    `json:"notes"`
	Performance   int       `json:"performance"` // 0 u omitido => 5
	StartWeightID string    `json:"start_weight_id"`
	EndWeightID   string    `json:"end_weight_id"`
}

func (req trainingRequest) toEntry() Training {
	return Training{
		ID:            req.ID,
		BirdID:        req.BirdID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TrainingType:  req.TrainingType,
		Notes:         req.Notes,
		Performance:   req.Performance,
		StartWeightID: req.StartWeightID,
		EndWeightID:   req.EndWeightID,
	}
}

type TrainingResponse struct {
	ID            string    `json:"id"`
	BirdID        string    `json:"bird_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TrainingType  string    `json:"training_type"`
	Notes         string    `json:"notes"`
	Performance   int       `json:"performance"`
	StartWeightID *string   `json:"start_weight_id"`
	EndWeightID   *string   `json:"end_weight_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToTrainingResponse(t Training) TrainingResponse {
	return TrainingResponse{
		ID:            t.ID,
		BirdID:        t.BirdID,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		TrainingType:  t.TrainingType,
		Notes:         t.Notes,
		Performance:   t.Performance,
		StartWeightID: nullable(t.StartWeightID),
		EndWeightID:   nullable(t.EndWeightID),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
