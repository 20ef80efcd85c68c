package memory

import (
	"context"
	"testing"
	"time"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/falconers"
	"mew-mate-api/internal/domain/logbook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*Store, birds.Bird) {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Falconers().Create(ctx, falconers.Falconer{ID: "f1", Name: "Ana", PermitClass: falconers.PermitMaster, PermitNumber: "P-9", CreatedAt: t0}))
	b := birds.Bird{ID: uuid.NewString(), FalconerID: "f1", Name: "Kes", Gender: birds.GenderFemale, Species: "kestrel", TrapDate: t0, CreatedAt: t0}
	require.NoError(t, s.Birds().Create(ctx, b))
	return s, b
}

func TestBirds_ForeignKeyAndConflict(t *testing.T) {
	s, b := seed(t)
	ctx := context.Background()

	err := s.Birds().Create(ctx, birds.Bird{ID: uuid.NewString(), FalconerID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, s.Birds().Create(ctx, b), apperrors.ErrConflict)
}

func TestBirds_BulkAllOrNothing(t *testing.T) {
	s, _ := seed(t)
	ctx := context.Background()

	err := s.Birds().BulkCreate(ctx, []birds.Bird{
		{ID: uuid.NewString(), FalconerID: "f1", Name: "a"},
		{ID: uuid.NewString(), FalconerID: "ghost", Name: "b"},
	})
	assert.ErrorIs(t, err, apperrors.ErrTransaction)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := s.Birds().ListByFalconer(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEntries_WeightRefMustExist(t *testing.T) {
	s, b := seed(t)
	ctx := context.Background()

	w := logbook.Weight{ID: uuid.NewString(), BirdID: b.ID, Value: 100, WTime: t0}
	require.NoError(t, s.Weights().Create(ctx, w))

	err := s.Feedings().Create(ctx, logbook.Feeding{ID: uuid.NewString(), BirdID: b.ID, FTime: t0, StartWeightID: w.ID, EndWeightID: uuid.NewString()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.Weights().Create(ctx, logbook.Weight{ID: uuid.NewString(), BirdID: uuid.NewString(), Value: 1, WTime: t0})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEntries_OrderAndWindow(t *testing.T) {
	s, b := seed(t)
	ctx := context.Background()
	repo := s.Weights()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, logbook.Weight{ID: uuid.NewString(), BirdID: b.ID, Value: 100, WTime: t0.AddDate(0, 0, -10*i)}))
	}

	all, err := repo.ListByBird(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].WTime.After(all[i].WTime))
	}

	latest, ok, err := repo.LatestAt(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, t0, latest)

	got, err := repo.ListByBirdWindow(ctx, b.ID, logbook.Window{From: t0.AddDate(0, 0, -20), To: &t0})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	paged, err := repo.List(ctx, 2, 4)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestDeleteBird_Cascades(t *testing.T) {
	s, b := seed(t)
	ctx := context.Background()

	w := logbook.Weight{ID: uuid.NewString(), BirdID: b.ID, Value: 100, WTime: t0}
	require.NoError(t, s.Weights().Create(ctx, w))
	f := logbook.Feeding{ID: uuid.NewString(), BirdID: b.ID, FTime: t0, StartWeightID: w.ID, EndWeightID: w.ID}
	require.NoError(t, s.Feedings().Create(ctx, f))
	tr := logbook.Training{ID: uuid.NewString(), BirdID: b.ID, StartTime: t0, EndTime: t0}
	require.NoError(t, s.Trainings().Create(ctx, tr))

	require.NoError(t, s.Birds().Delete(ctx, b.ID))

	_, err := s.Weights().GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.Feedings().GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.Trainings().GetByID(ctx, tr.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, s.Birds().Delete(ctx, b.ID), apperrors.ErrNotFound)
}
