package postgres

import (
	"database/sql"

	"mew-mate-api/internal/domain/logbook"
)

func NewWeightsRepo(db *sql.DB) *EntryRepo[logbook.Weight] {
	return &EntryRepo[logbook.Weight]{db: db, t: entryTable[logbook.Weight]{
		name:    "weights",
		what:    "weight",
		timeCol: "w_time",
		columns: []string{"id", "bird_id", "weight", "w_time", "created_at", "updated_at"},
		args: func(w logbook.Weight) []any {
			return []any{w.ID, w.BirdID, w.Value, w.WTime, w.CreatedAt, w.UpdatedAt}
		},
		scan: func(s rowScanner) (logbook.Weight, error) {
			var w logbook.Weight
			err := s.Scan(&w.ID, &w.BirdID, &w.Value, &w.WTime, &w.CreatedAt, &w.UpdatedAt)
			return w, err
		},
	}}
}

func NewFeedingsRepo(db *sql.DB) *EntryRepo[logbook.Feeding] {
	return &EntryRepo[logbook.Feeding]{db: db, t: entryTable[logbook.Feeding]{
		name:    "feedings",
		what:    "feeding",
		timeCol: "f_time",
		columns: []string{"id", "bird_id", "f_time", "food_type", "amount", "start_weight_id", "end_weight_id", "created_at", "updated_at"},
		args: func(f logbook.Feeding) []any {
			return []any{f.ID, f.BirdID, f.FTime, f.FoodType, f.Amount, f.StartWeightID, f.EndWeightID, f.CreatedAt, f.UpdatedAt}
		},
		scan: func(s rowScanner) (logbook.Feeding, error) {
			var f logbook.Feeding
			err := s.Scan(&f.ID, &f.BirdID, &f.FTime, &f.FoodType, &f.Amount, &f.StartWeightID, &f.EndWeightID, &f.CreatedAt, &f.UpdatedAt)
			return f, err
		},
	}}
}

func NewHuntsRepo(db *sql.DB) *EntryRepo[logbook.Hunt] {
	return &EntryRepo[logbook.Hunt]{db: db, t: entryTable[logbook.Hunt]{
		name:    "hunts",
		what:    "hunt",
		timeCol: "start_time",
		columns: []string{"id", "bird_id", "start_time", "end_time", "prey_type", "prey_count", "notes", "start_weight_id", "end_weight_id", "created_at", "updated_at"},
		args: func(h logbook.Hunt) []any {
			return []any{h.ID, h.BirdID, h.StartTime, h.EndTime, h.PreyType, h.PreyCount, h.Notes,
				nullString(h.StartWeightID), nullString(h.EndWeightID), h.CreatedAt, h.UpdatedAt}
		},
		scan: func(s rowScanner) (logbook.Hunt, error) {
			var h logbook.Hunt
			var start, end sql.NullString
			err := s.Scan(&h.ID, &h.BirdID, &h.StartTime, &h.EndTime, &h.PreyType, &h.PreyCount, &h.Notes, &start, &end, &h.CreatedAt, &h.UpdatedAt)
			h.StartWeightID, h.EndWeightID = start.String, end.String
			return h, err
		},
	}}
}

func NewTrainingsRepo(db *sql.DB) *EntryRepo[logbook.Training] {
	return &EntryRepo[logbook.Training]{db: db, t: entryTable[logbook.Training]{
		name:    "trainings",
		what:    "training",
		timeCol: "start_time",
		columns: []string{"id", "bird_id", "start_time", "end_time", "training_type", "notes", "performance", "start_weight_id", "end_weight_id", "created_at", "updated_at"},
		args: func(t logbook.Training) []any {
			return []any{t.ID, t.BirdID, t.StartTime, t.EndTime, t.TrainingType, t.Notes, t.Performance,
				nullString(t.StartWeightID), nullString(t.EndWeightID), t.CreatedAt, t.UpdatedAt}
		},
		scan: func(s rowScanner) (logbook.Training, error) {
			var t logbook.Training
			var start, end sql.NullString
			err := s.Scan(&t.ID, &t.BirdID, &t.StartTime, &t.EndTime, &t.TrainingType, &t.Notes, &t.Performance, &start, &end, &t.CreatedAt, &t.UpdatedAt)
			t.StartWeightID, t.EndWeightID = start.String, end.String
			return t, err
		},
	}}
}
