package logbook

import (
	"time"

	"mew-mate-api/internal/apperrors"
)

// Weight es un pesaje puntual del ave, en gramos.
type Weight struct {
	ID        string
	BirdID    string
	Value     float64
	WTime     time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Weight) EntryID() string         { return w.ID }
func (w Weight) EntryBirdID() string     { return w.BirdID }
func (w Weight) Timestamp() time.Time    { return w.WTime }
func (w Weight) WeightRefs() []WeightRef { return nil }

func (w Weight) Normalize(now time.Time) (Weight, error) {
	id, err := entryID(w.ID)
	if err != nil {
		return Weight{}, err
	}
	birdID, err := requireUUID("bird_id", w.BirdID)
	if err != nil {
		return Weight{}, err
	}
	if w.Value <= 0 {
		return Weight{}, apperrors.Invalid("weight must be positive")
	}

	wt := w.WTime
	if wt.IsZero() {
		wt = now
	}

	return Weight{
		ID:        id,
		BirdID:    birdID,
		Value:     w.Value,
		WTime:     storedTime(wt),
		CreatedAt: storedTime(now),
		UpdatedAt: storedTime(now),
	}, nil
}

type weightRequest struct {
	ID     string     `json:"id"` // opcional (UUID)
	BirdID string     `json:"bird_id"`
	Weight float64    `json:"weight"`
	WTime  *time.Time `json:"w_time"` // RFC3339, por defecto ahora
}

func (req weightRequest) toEntry() Weight {
	w := Weight{ID: req.ID, BirdID: req.BirdID, Value: req.Weight}
	if req.WTime != nil {
		w.WTime = *req.WTime
	}
	return w
}

type WeightResponse struct {
	ID        string    `json:"id"`
	BirdID    string    `json:"bird_id"`
	Weight    float64   `json:"weight"`
	WTime     time.Time `json:"w_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToWeightResponse(w Weight) WeightResponse {
	return WeightResponse{
		ID:        w.ID,
		BirdID:    w.BirdID,
		Weight:    w.Value,
		WTime:     w.WTime,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
