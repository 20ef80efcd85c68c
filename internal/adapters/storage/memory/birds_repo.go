package memory

import (
	"context"
	"fmt"
	"sort"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/birds"
)

type BirdsRepo struct {
	s *Store
}

func (r *BirdsRepo) Create(_ context.Context, b birds.Bird) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.insertLocked(b)
}

func (r *BirdsRepo) BulkCreate(_ context.Context, items []birds.Bird) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inserted := make([]string, 0, len(items))
	for _, b := range items {
		if err := r.insertLocked(b); err != nil {
			for _, id := range inserted {
				delete(r.s.birds, id)
			}
			return fmt.Errorf("%w: %w", apperrors.ErrTransaction, err)
		}
		inserted = append(inserted, b.ID)
	}
	return nil
}

func (r *BirdsRepo) insertLocked(b birds.Bird) error {
	if _, ok := r.s.falconers[b.FalconerID]; !ok {
		return apperrors.NotFound("falconer " + b.FalconerID)
	}
	if _, exists := r.s.birds[b.ID]; exists {
		return apperrors.ErrConflict
	}
	r.s.birds[b.ID] = b
	return nil
}

func (r *BirdsRepo) GetByID(_ context.Context, id string) (birds.Bird, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.birds[id]
	if !ok {
		return birds.Bird{}, apperrors.NotFound("bird")
	}
	return b, nil
}

func (r *BirdsRepo) ListByFalconer(_ context.Context, falconerID string) ([]birds.Bird, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]birds.Bird, 0)
	for _, b := range r.s.birds {
		if b.FalconerID == falconerID {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *BirdsRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.birds[id]; !ok {
		return apperrors.NotFound("bird")
	}
	r.s.deleteBirdLocked(id)
	return nil
}
