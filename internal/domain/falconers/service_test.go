package falconers

import (
	"context"
	"errors"
	"testing"
	"time"

	"mew-mate-api/internal/apperrors"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID      map[string]Falconer
	lastLimit int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Falconer{}}
}

func (r *testRepo) Create(_ context.Context, f Falconer) error {
	if _, ok := r.byID[f.ID]; ok {
		return apperrors.ErrConflict
	}
	r.byID[f.ID] = f
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Falconer, error) {
	f, ok := r.byID[id]
	if !ok {
		return Falconer{}, apperrors.NotFound("falconer")
	}
	return f, nil
}

func (r *testRepo) List(_ context.Context, limit, _ int) ([]Falconer, error) {
	r.lastLimit = limit
	return []Falconer{}, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsIDToCaller(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	f, err := svc.Create(context.Background(), "sub-123", CreateInput{
		Name:         "  Ana  ",
		PermitClass:  " Master ",
		PermitNumber: "P-7",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if f.ID != "sub-123" {
		t.Fatalf("expected id from caller, got %q", f.ID)
	}
	if f.Name != "Ana" || f.PermitClass != PermitMaster {
		t.Fatalf("expected normalized fields, got %#v", f)
	}
	if f.CreatedAt != now || f.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := map[string]CreateInput{
		"no name":      {PermitClass: "general", PermitNumber: "P"},
		"no permit":    {Name: "Ana", PermitClass: "general"},
		"bad class":    {Name: "Ana", PermitClass: "wizard", PermitNumber: "P"},
		"empty class":  {Name: "Ana", PermitNumber: "P"},
		"no id at all": {Name: "Ana", PermitClass: "general", PermitNumber: "P"},
	}

	for name, in := range cases {
		caller := "sub-1"
		if name == "no id at all" {
			caller = ""
		}
		_, err := svc.Create(context.Background(), caller, in)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Create_Conflict(t *testing.T) {
	svc := NewService(newTestRepo())
	in := CreateInput{Name: "Ana", PermitClass: "general", PermitNumber: "P"}

	if _, err := svc.Create(context.Background(), "sub-1", in); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "sub-1", in); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestService_GetAndList(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.GetByID(context.Background(), " "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.List(context.Background(), 10_000, -3); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.lastLimit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", repo.lastLimit)
	}
}
