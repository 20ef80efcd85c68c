package memory

import (
	"context"
	"sort"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/falconers"
)

type FalconersRepo struct {
	s *Store
}

func (r *FalconersRepo) Create(_ context.Context, f falconers.Falconer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.falconers[f.ID]; exists {
		return apperrors.ErrConflict
	}
	r.s.falconers[f.ID] = f
	return nil
}

func (r *FalconersRepo) GetByID(_ context.Context, id string) (falconers.Falconer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.falconers[id]
	if !ok {
		return falconers.Falconer{}, apperrors.NotFound("falconer")
	}
	return f, nil
}

func (r *FalconersRepo) List(_ context.Context, limit, offset int) ([]falconers.Falconer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]falconers.Falconer, 0, len(r.s.falconers))
	for _, f := range r.s.falconers {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	return page(all, limit, offset), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
