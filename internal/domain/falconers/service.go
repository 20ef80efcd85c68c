package falconers

import (
	"context"
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/platform/pagination"
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
	ID           string
	Name         string
	PermitClass  string
	PermitNumber string
}

// Create registra un halconero. Si no viene ID se usa callerID (identidad del token).
func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Falconer, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = strings.TrimSpace(callerID)
	}
	if id == "" {
		return Falconer{}, apperrors.Invalid("id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Falconer{}, apperrors.Invalid("name is required")
	}
	if strings.TrimSpace(in.PermitNumber) == "" {
		return Falconer{}, apperrors.Invalid("permit_number is required")
	}

	class, ok := ParsePermitClass(in.PermitClass)
	if !ok {
		return Falconer{}, apperrors.Invalid("permit_class must be one of apprentice, general, master")
	}

	now := s.now()
	f := Falconer{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		PermitClass:  class,
		PermitNumber: strings.TrimSpace(in.PermitNumber),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Falconer{}, err
	}
	return f, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Falconer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Falconer{}, apperrors.Invalid("id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Falconer, error) {
	limit, offset = pagination.Clamp(limit, offset)
	return s.repo.List(ctx, limit, offset)
}

// ParsePermitClass normaliza (trim + lower) y valida la clase de licencia.
func ParsePermitClass(s string) (PermitClass, bool) {
	c := PermitClass(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case PermitApprentice, PermitGeneral, PermitMaster:
		return c, true
	default:
		return "", false
	}
}
