package birds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	ID         string // opcional, UUID
	FalconerID string // opcional; por defecto el caller
	Name       string
	Gender     string
	Species    string
	TrapDate   *time.Time
}

func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Bird, error) {
	b, err := s.build(callerID, in, s.now())
	if err != nil {
		return Bird{}, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Bird{}, err
	}
	return b, nil
}

// BulkCreate valida todos los items antes de abrir la transacción.
func (s *Service) BulkCreate(ctx context.Context, callerID string, in []CreateInput) error {
	if len(in) == 0 {
		return apperrors.Invalid("at least one bird is required")
	}

	now := s.now()
	items := make([]Bird, 0, len(in))
	for i, raw := range in {
		b, err := s.build(callerID, raw, now)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, b)
	}
	return s.repo.BulkCreate(ctx, items)
}

func (s *Service) GetByID(ctx context.Context, id string) (Bird, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Bird{}, apperrors.Invalid("id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Bird{}, apperrors.Invalid("id must be a UUID")
	}
	return s.repo.GetByID(ctx, id)
}

// ListByOwner devuelve las aves del halconero; slice vacío si no tiene.
func (s *Service) ListByOwner(ctx context.Context, falconerID string) ([]Bird, error) {
	falconerID = strings.TrimSpace(falconerID)
	if falconerID == "" {
		return nil, apperrors.Invalid("falconer id is required")
	}
	return s.repo.ListByFalconer(ctx, falconerID)
}

// Delete solo lo puede hacer el halconero dueño del ave.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.FalconerID != strings.TrimSpace(callerID) {
		return apperrors.ErrForbidden
	}
	return s.repo.Delete(ctx, b.ID)
}

func (s *Service) build(callerID string, in CreateInput, now time.Time) (Bird, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return Bird{}, apperrors.Invalid("id must be a UUID")
	}

	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return Bird{}, apperrors.Invalid("falconer_id is required")
	}
	// Solo se registran aves a nombre propio.
	falconerID := strings.TrimSpace(in.FalconerID)
	if falconerID == "" {
		falconerID = callerID
	}
	if falconerID != callerID {
		return Bird{}, fmt.Errorf("%w: birds can only be registered to the caller", apperrors.ErrForbidden)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Bird{}, apperrors.Invalid("name is required")
	}
	if strings.TrimSpace(in.Species) == "" {
		return Bird{}, apperrors.Invalid("species is required")
	}

	gender := Gender(strings.ToLower(strings.TrimSpace(in.Gender)))
	if gender == "" {
		gender = GenderUnknown
	}

	now = now.UTC().Truncate(time.Microsecond)
	trap := now
	if in.TrapDate != nil && !in.TrapDate.IsZero() {
		trap = in.TrapDate.UTC().Truncate(time.Microsecond)
	}

	return Bird{
		ID:         id,
		FalconerID: falconerID,
		Name:       strings.TrimSpace(in.Name),
		Gender:     gender,
		Species:    strings.TrimSpace(in.Species),
		TrapDate:   trap,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
