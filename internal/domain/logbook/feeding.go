package logbook

import (
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
)

// Feeding es una alimentación. Siempre cita un pesaje antes y otro después.
type Feeding struct {
	ID            string
	BirdID        string
	FTime         time.Time
	FoodType      string
	Amount        float64
	StartWeightID string
	EndWeightID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f Feeding) EntryID() string      { return f.ID }
func (f Feeding) EntryBirdID() string  { return f.BirdID }
func (f Feeding) Timestamp() time.Time { return f.FTime }
func (f Feeding) WeightRefs() []WeightRef {
	return weightRefs(f.StartWeightID, f.EndWeightID)
}

func (f Feeding) Normalize(now time.Time) (Feeding, error) {
	id, err := entryID(f.ID)
	if err != nil {
		return Feeding{}, err
	}
	birdID, err := requireUUID("bird_id", f.BirdID)
	if err != nil {
		return Feeding{}, err
	}

	foodType := strings.TrimSpace(f.FoodType)
	if foodType == "" {
		return Feeding{}, apperrors.Invalid("food_type is required")
	}
	if f.Amount < 0 {
		return Feeding{}, apperrors.Invalid("amount must not be negative")
	}

	start, err := requireUUID("start_weight_id", f.StartWeightID)
	if err != nil {
		return Feeding{}, err
	}
	end, err := requireUUID("end_weight_id", f.EndWeightID)
	if err != nil {
		return Feeding{}, err
	}

	ft := f.FTime
	if ft.IsZero() {
		ft = now
	}

	return Feeding{
		ID:            id,
		BirdID:        birdID,
		FTime:         storedTime(ft),
		FoodType:      foodType,
		Amount:        f.Amount,
		StartWeightID: start,
		EndWeightID:   end,
		CreatedAt:     storedTime(now),
		UpdatedAt:     storedTime(now),
	}, nil
}

type feedingRequest struct {
	ID            string     `json:"id"`
	BirdID        string     `json:"bird_id"`
	FTime         *time.Time `json:"f_time"`
	FoodType      string     `json:"food_type"`
	Amount        float64    `json:"amount"`
	StartWeightID string     `json:"start_weight_id"`
	EndWeightID   string     `json:"end_weight_id"`
}

func (req feedingRequest) toEntry() Feeding {
	f := Feeding{
		ID:            req.ID,
		BirdID:        req.BirdID,
		FoodType:      req.FoodType,
		Amount:        req.Amount,
		StartWeightID: req.StartWeightID,
		EndWeightID:   req.EndWeightID,
	}
	if req.FTime != nil {
		f.FTime = *req.FTime
	}
	return f
}

type FeedingResponse struct {
	ID            string    `json:"id"`
	BirdID        string    `json:"bird_id"`
	FTime         time.Time `json:"f_time"`
	FoodType      string    `json:"food_type"`
	Amount        float64   `json:"amount"`
	StartWeightID string    `json:"start_weight_id"`
	EndWeightID   string    `json:"end_weight_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToFeedingResponse(f Feeding) FeedingResponse {
	return FeedingResponse{
		ID:            f.ID,
		BirdID:        f.BirdID,
		FTime:         f.FTime,
		FoodType:      f.FoodType,
		Amount:        f.Amount,
		StartWeightID: f.StartWeightID,
		EndWeightID:   f.EndWeightID,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
