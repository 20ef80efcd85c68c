package logbook

import (
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
)

// Hunt es una salida de caza. Los pesajes de inicio/fin son opcionales.
type Hunt struct {
	ID            string
	BirdID        string
	StartTime     time.Time
	EndTime       time.Time
	PreyType      string
	PreyCount     int
	Notes         string
	StartWeightID string
	EndWeightID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (h Hunt) EntryID() string      { return h.ID }
func (h Hunt) EntryBirdID() string  { return h.BirdID }
func (h Hunt) Timestamp() time.Time { return h.StartTime }
func (h Hunt) WeightRefs() []WeightRef {
	return weightRefs(h.StartWeightID, h.EndWeightID)
}

func (h Hunt) Normalize(now time.Time) (Hunt, error) {
	id, err := entryID(h.ID)
	if err != nil {
		return Hunt{}, err
	}
	birdID, err := requireUUID("bird_id", h.BirdID)
	if err != nil {
		return Hunt{}, err
	}
	if err := sessionSpan(h.StartTime, h.EndTime); err != nil {
		return Hunt{}, err
	}

	preyType := strings.TrimSpace(h.PreyType)
	if preyType == "" {
		return Hunt{}, apperrors.Invalid("prey_type is required")
	}
	if h.PreyCount < 0 {
		return Hunt{}, apperrors.Invalid("prey_count must not be negative")
	}

	start, err := optionalUUID("start_weight_id", h.StartWeightID)
	if err != nil {
		return Hunt{}, err
	}
	end, err := optionalUUID("end_weight_id", h.EndWeightID)
	if err != nil {
		return Hunt{}, err
	}

	return Hunt{
		ID:            id,
		BirdID:        birdID,
		StartTime:     storedTime(h.StartTime),
		EndTime:       storedTime(h.EndTime),
		PreyType:      preyType,
		PreyCount:     h.PreyCount,
		Notes:         strings.TrimSpace(h.Notes),
		StartWeightID: start,
		EndWeightID:   end,
		CreatedAt:     storedTime(now),
		UpdatedAt:     storedTime(now),
	}, nil
}

type huntRequest struct {
	ID            string    `json:"id"`
	BirdID        string    `json:"bird_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	PreyType      string    `json:"prey_type"`
	PreyCount     int       `json:"prey_count"`
	Notes         string    `json:"notes"`
	StartWeightID string    `json:"start_weight_id"` // opcional
	EndWeightID   string    `json:"end_weight_id"`   // opcional
}

func (req huntRequest) toEntry() Hunt {
	return Hunt{
		ID:            req.ID,
		BirdID:        req.BirdID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PreyType:      req.PreyType,
		PreyCount:     req.PreyCount,
		Notes:         req.Notes,
		StartWeightID: req.StartWeightID,
		EndWeightID:   req.EndWeightID,
	}
}

type HuntResponse struct {
	ID            string    `json:"id"`
	BirdID        string    `json:"bird_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	PreyType      string    `json:"prey_type"`
	PreyCount     int       `json:"prey_count"`
	Notes         string    `json:"notes"`
	StartWeightID *string   `json:"start_weight_id"`
	EndWeightID   *string   `json:"end_weight_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToHuntResponse(h Hunt) HuntResponse {
	return HuntResponse{
		ID:            h.ID,
		BirdID:        h.BirdID,
		StartTime:     h.StartTime,
		EndTime:       h.EndTime,
		PreyType:      h.PreyType,
		PreyCount:     h.PreyCount,
		Notes:         h.Notes,
		StartWeightID: nullable(h.StartWeightID),
		EndWeightID:   nullable(h.EndWeightID),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
