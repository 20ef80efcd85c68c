package birds

import (
	"context"
	"testing"
	"time"

	"mew-mate-api/internal/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID    map[string]Bird
	deleted []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Bird{}}
}

func (r *testRepo) Create(_ context.Context, b Bird) error {
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) BulkCreate(ctx context.Context, items []Bird) error {
	for _, b := range items {
		_ = r.Create(ctx, b)
	}
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Bird, error) {
	b, ok := r.byID[id]
	if !ok {
		return Bird{}, apperrors.NotFound("bird")
	}
	return b, nil
}

func (r *testRepo) ListByFalconer(_ context.Context, falconerID string) ([]Bird, error) {
	out := make([]Bird, 0)
	for _, b := range r.byID {
		if b.FalconerID == falconerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newService(t *testing.T) (*Service, *testRepo, time.Time) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, now
}

func TestService_Create_Defaults(t *testing.T) {
	svc, _, now := newService(t)

	b, err := svc.Create(context.Background(), "f1", CreateInput{Name: " Kes ", Species: "kestrel"})
	require.NoError(t, err)

	_, err = uuid.Parse(b.ID)
	assert.NoError(t, err)
	assert.Equal(t, "f1", b.FalconerID)
	assert.Equal(t, "Kes", b.Name)
	assert.Equal(t, GenderUnknown, b.Gender)
	assert.Equal(t, now, b.TrapDate)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "f1", CreateInput{Species: "kestrel"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, "f1", CreateInput{Name: "Kes"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, "f1", CreateInput{ID: "nope", Name: "Kes", Species: "kestrel"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, "", CreateInput{Name: "Kes", Species: "kestrel"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestService_Create_NormalizesTimesToUTC(t *testing.T) {
	svc, _, now := newService(t)
	local := time.FixedZone("UTC+2", 2*60*60)
	svc.now = func() time.Time { return now.In(local).Add(1500 * time.Nanosecond) }
	trap := time.Date(2023, 11, 4, 9, 30, 0, 999, local)

	b, err := svc.Create(context.Background(), "f1", CreateInput{Name: "Kes", Species: "kestrel", TrapDate: &trap})
	require.NoError(t, err)

	assert.Equal(t, time.UTC, b.TrapDate.Location())
	assert.Equal(t, time.Date(2023, 11, 4, 7, 30, 0, 0, time.UTC), b.TrapDate)
	assert.Equal(t, now.Add(time.Microsecond), b.CreatedAt)
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)
}

func TestService_Create_OnlyForCaller(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "f1", CreateInput{FalconerID: "f2", Name: "Kes", Species: "kestrel"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.BulkCreate(ctx, "f1", []CreateInput{
		{Name: "a", Species: "s"},
		{FalconerID: "f2", Name: "b", Species: "s"},
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Empty(t, repo.byID)

	b, err := svc.Create(ctx, "f1", CreateInput{FalconerID: " f1 ", Name: "Kes", Species: "kestrel"})
	require.NoError(t, err)
	assert.Equal(t, "f1", b.FalconerID)
}

func TestService_BulkCreate_ValidatesEveryItemFirst(t *testing.T) {
	svc, repo, _ := newService(t)

	err := svc.BulkCreate(context.Background(), "f1", []CreateInput{
		{Name: "a", Species: "s"},
		{Name: "", Species: "s"},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.ErrorContains(t, err, "item 1")
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.BulkCreate(context.Background(), "f1", nil), apperrors.ErrInvalidInput)
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "f1", CreateInput{Name: "Kes", Species: "kestrel"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "f2", b.ID), apperrors.ErrForbidden)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(ctx, "f1", b.ID))
	assert.Equal(t, []string{b.ID}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, "f1", b.ID), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "f1", "bad"), apperrors.ErrInvalidInput)
}
