package logbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/platform/pagination"
)

// WeightLookup resuelve los pesajes citados por una sesión.
type WeightLookup interface {
	GetByID(ctx context.Context, id string) (Weight, error)
}

// MaxWindowDays acota el filtro por días; más allá AddDate desborda.
const MaxWindowDays = 36500

type Options struct {
	// Anchor de la ventana. nil => LatestAnchor.
	Anchor Anchor
	// DefaultDays se usa cuando el filtro no trae días. 0 => todos los registros del ave.
	DefaultDays int
	// Weights valida start/end weight antes de insertar. nil => sin referencias (Weight).
	Weights WeightLookup
}

type Service[T Entry[T]] struct {
	kind        string
	repo        Repository[T]
	anchor      Anchor
	defaultDays int
	weights     WeightLookup
	now         func() time.Time
}

func NewService[T Entry[T]](kind string, repo Repository[T], opts Options) *Service[T] {
	anchor := opts.Anchor
	if anchor == nil {
		anchor = LatestAnchor{}
	}
	return &Service[T]{
		kind:        kind,
		repo:        repo,
		anchor:      anchor,
		defaultDays: opts.DefaultDays,
		weights:     opts.Weights,
		now:         time.Now,
	}
}

func (s *Service[T]) Kind() string { return s.kind }

func (s *Service[T]) Create(ctx context.Context, in T) (T, error) {
	var zero T

	e, err := in.Normalize(s.now())
	if err != nil {
		return zero, err
	}
	if err := s.checkWeightRefs(ctx, e); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return zero, err
	}
	return e, nil
}

// BulkCreate valida todos los items (incluidas las referencias a pesajes)
// antes de abrir la transacción: o se insertan todos o ninguno.
func (s *Service[T]) BulkCreate(ctx context.Context, in []T) error {
	if len(in) == 0 {
		return apperrors.Invalid("at least one %s is required", s.kind)
	}

	now := s.now()
	items := make([]T, 0, len(in))
	for i, raw := range in {
		e, err := raw.Normalize(now)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if err := s.checkWeightRefs(ctx, e); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, e)
	}
	return s.repo.BulkCreate(ctx, items)
}

// GetByID falla cerrado: id vacío o no-UUID es error de validación, nunca "primera fila".
func (s *Service[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id, err := requireUUID("id", id)
	if err != nil {
		return zero, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	limit, offset = pagination.Clamp(limit, offset)
	return s.repo.List(ctx, limit, offset)
}

func (s *Service[T]) ListByBird(ctx context.Context, birdID string) ([]T, error) {
	birdID, err := requireUUID("bird_id", birdID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBird(ctx, birdID)
}

// FilterByWindow devuelve los registros del ave en los últimos N días, del más
// reciente al más antiguo. days nil => DefaultDays (o todo si es 0); days <= 0 => error.
func (s *Service[T]) FilterByWindow(ctx context.Context, birdID string, days *int) ([]T, error) {
	birdID, err := requireUUID("bird_id", birdID)
	if err != nil {
		return nil, err
	}

	d := s.defaultDays
	if days != nil {
		if *days <= 0 {
			return nil, apperrors.Invalid("days must be a positive integer")
		}
		if *days > MaxWindowDays {
			return nil, apperrors.Invalid("days must be at most %d", MaxWindowDays)
		}
		d = *days
	}
	if d == 0 {
		return s.repo.ListByBird(ctx, birdID)
	}

	w, ok, err := s.anchor.Window(ctx, s.repo, birdID, d, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	return s.repo.ListByBirdWindow(ctx, birdID, w)
}

// checkWeightRefs verifica que cada pesaje citado exista y sea del mismo ave.
func (s *Service[T]) checkWeightRefs(ctx context.Context, e T) error {
	refs := e.WeightRefs()
	if len(refs) == 0 || s.weights == nil {
		return nil
	}

	for _, ref := range refs {
		w, err := s.weights.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NotFound(fmt.Sprintf("%s %s", ref.Field, ref.ID))
			}
			return err
		}
		if !strings.EqualFold(w.BirdID, e.EntryBirdID()) {
			return apperrors.Invalid("%s belongs to another bird", ref.Field)
		}
	}
	return nil
}
