package dashboard

import (
	"context"
	"testing"
	"time"

	"mew-mate-api/internal/adapters/storage/memory"
	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/falconers"
	"mew-mate-api/internal/domain/logbook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Falconers().Create(ctx, falconers.Falconer{ID: "f1", Name: "Ana"}))
	b := birds.Bird{ID: uuid.NewString(), FalconerID: "f1", Name: "Kes", Species: "kestrel"}
	require.NoError(t, store.Birds().Create(ctx, b))

	w1 := logbook.Weight{ID: uuid.NewString(), BirdID: b.ID, Value: 110, WTime: now.Add(-time.Hour)}
	w2 := logbook.Weight{ID: uuid.NewString(), BirdID: b.ID, Value: 115, WTime: now}
	require.NoError(t, store.Weights().BulkCreate(ctx, []logbook.Weight{w1, w2}))
	require.NoError(t, store.Feedings().Create(ctx, logbook.Feeding{ID: uuid.NewString(), BirdID: b.ID, FTime: now, StartWeightID: w1.ID, EndWeightID: w2.ID}))
	require.NoError(t, store.Hunts().Create(ctx, logbook.Hunt{ID: uuid.NewString(), BirdID: b.ID, StartTime: now, EndTime: now}))

	svc := NewService(store.Birds(), store.Weights(), store.Feedings(), store.Hunts(), store.Trainings())

	d, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, d.Bird.ID)
	require.Len(t, d.Weights, 2)
	assert.Equal(t, w2.ID, d.Weights[0].ID)
	assert.Len(t, d.Feedings, 1)
	assert.Len(t, d.Hunts, 1)
	assert.Empty(t, d.Trainings)

	resp := toResponse(d)
	assert.Equal(t, "Kes", resp.Name)
	assert.NotNil(t, resp.Trainings)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
