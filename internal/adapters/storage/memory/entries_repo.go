package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/logbook"
)

// EntryRepo implementa logbook.Repository[T] sobre una de las tablas del Store.
type EntryRepo[T logbook.Entry[T]] struct {
	s     *Store
	table func(*Store) map[string]T
}

func (r *EntryRepo[T]) Create(_ context.Context, e T) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.insertLocked(e)
}

func (r *EntryRepo[T]) BulkCreate(_ context.Context, items []T) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m := r.table(r.s)
	inserted := make([]string, 0, len(items))
	for _, e := range items {
		if err := r.insertLocked(e); err != nil {
			for _, id := range inserted {
				delete(m, id)
			}
			return fmt.Errorf("%w: %w", apperrors.ErrTransaction, err)
		}
		inserted = append(inserted, e.EntryID())
	}
	return nil
}

// insertLocked aplica las mismas FKs que el schema SQL.
func (r *EntryRepo[T]) insertLocked(e T) error {
	if _, ok := r.s.birds[e.EntryBirdID()]; !ok {
		return apperrors.NotFound("bird " + e.EntryBirdID())
	}
	for _, ref := range e.WeightRefs() {
		if _, ok := r.s.weights[ref.ID]; !ok {
			return apperrors.NotFound(ref.Field + " " + ref.ID)
		}
	}

	m := r.table(r.s)
	if _, exists := m[e.EntryID()]; exists {
		return apperrors.ErrConflict
	}
	m[e.EntryID()] = e
	return nil
}

func (r *EntryRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.table(r.s)[id]
	if !ok {
		var zero T
		return zero, apperrors.ErrNotFound
	}
	return e, nil
}

func (r *EntryRepo[T]) List(_ context.Context, limit, offset int) ([]T, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return page(r.collect(func(T) bool { return true }), limit, offset), nil
}

func (r *EntryRepo[T]) ListByBird(_ context.Context, birdID string) ([]T, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(e T) bool { return e.EntryBirdID() == birdID }), nil
}

func (r *EntryRepo[T]) ListByBirdWindow(_ context.Context, birdID string, w logbook.Window) ([]T, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(e T) bool {
		return e.EntryBirdID() == birdID && w.Contains(e.Timestamp())
	}), nil
}

func (r *EntryRepo[T]) LatestAt(_ context.Context, birdID string) (time.Time, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest time.Time
	found := false
	for _, e := range r.table(r.s) {
		if e.EntryBirdID() != birdID {
			continue
		}
		if !found || e.Timestamp().After(latest) {
			latest, found = e.Timestamp(), true
		}
	}
	return latest, found, nil
}

// collect filtra y ordena del más reciente al más antiguo (desempate por id).
func (r *EntryRepo[T]) collect(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, e := range r.table(r.s) {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].Timestamp(), out[j].Timestamp()
		if ti.Equal(tj) {
			return out[i].EntryID() < out[j].EntryID()
		}
		return ti.After(tj)
	})
	return out
}

var (
	_ logbook.Repository[logbook.Weight]   = (*EntryRepo[logbook.Weight])(nil)
	_ logbook.Repository[logbook.Feeding]  = (*EntryRepo[logbook.Feeding])(nil)
	_ logbook.Repository[logbook.Hunt]     = (*EntryRepo[logbook.Hunt])(nil)
	_ logbook.Repository[logbook.Training] = (*EntryRepo[logbook.Training])(nil)
)
