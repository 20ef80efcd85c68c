package logbook

import (
	"context"
	"sort"
	"testing"
	"time"

	"mew-mate-api/internal/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo[T Entry[T]] struct {
	byID  map[string]T
	order []string
}

func newTestRepo[T Entry[T]]() *testRepo[T] {
	return &testRepo[T]{byID: map[string]T{}}
}

func (r *testRepo[T]) Create(_ context.Context, e T) error {
	if _, ok := r.byID[e.EntryID()]; ok {
		return apperrors.ErrConflict
	}
	r.byID[e.EntryID()] = e
	r.order = append(r.order, e.EntryID())
	return nil
}

func (r *testRepo[T]) BulkCreate(ctx context.Context, items []T) error {
	for _, e := range items {
		if _, ok := r.byID[e.EntryID()]; ok {
			return apperrors.ErrTransaction
		}
	}
	for _, e := range items {
		_ = r.Create(ctx, e)
	}
	return nil
}

func (r *testRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	e, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, apperrors.NotFound("entry")
	}
	return e, nil
}

func (r *testRepo[T]) List(_ context.Context, limit, offset int) ([]T, error) {
	out := make([]T, 0)
	for i, id := range r.order {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo[T]) ListByBird(ctx context.Context, birdID string) ([]T, error) {
	return r.ListByBirdWindow(ctx, birdID, Window{})
}

func (r *testRepo[T]) ListByBirdWindow(_ context.Context, birdID string, w Window) ([]T, error) {
	out := make([]T, 0)
	for _, e := range r.byID {
		if e.EntryBirdID() == birdID && w.Contains(e.Timestamp()) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp().After(out[j].Timestamp()) })
	return out, nil
}

func (r *testRepo[T]) LatestAt(_ context.Context, birdID string) (time.Time, bool, error) {
	var latest time.Time
	found := false
	for _, e := range r.byID {
		if e.EntryBirdID() != birdID {
			continue
		}
		if !found || e.Timestamp().After(latest) {
			latest = e.Timestamp()
			found = true
		}
	}
	return latest, found, nil
}

// -------------------------
// Tests
// -------------------------

var (
	birdA = uuid.NewString()
	birdB = uuid.NewString()
	// T fijo, lejos del reloj real.
	baseT = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func intPtr(n int) *int { return &n }

func newWeights(t *testing.T) (*Service[Weight], *testRepo[Weight]) {
	t.Helper()
	repo := newTestRepo[Weight]()
	svc := NewService[Weight](KindWeight, repo, Options{DefaultDays: 30})
	svc.now = fixedClock(baseT)
	return svc, repo
}

func TestWeight_Create_DefaultsTimeAndID(t *testing.T) {
	svc, _ := newWeights(t)

	w, err := svc.Create(context.Background(), Weight{BirdID: birdA, Value: 950})
	require.NoError(t, err)

	_, err = uuid.Parse(w.ID)
	assert.NoError(t, err)
	assert.Equal(t, baseT, w.WTime)
	assert.Equal(t, baseT, w.CreatedAt)
}

func TestCreate_TimesStoredAtMicrosecondUTC(t *testing.T) {
	svc, _ := newWeights(t)
	ctx := context.Background()
	svc.now = fixedClock(baseT.Add(1500 * time.Nanosecond))

	local := time.FixedZone("UTC-3", -3*60*60)
	w, err := svc.Create(ctx, Weight{BirdID: birdA, Value: 950, WTime: baseT.Add(123456789 * time.Nanosecond).In(local)})
	require.NoError(t, err)

	assert.Equal(t, time.UTC, w.WTime.Location())
	assert.True(t, w.WTime.Equal(baseT.Add(123456*time.Microsecond)))
	assert.Equal(t, baseT.Add(time.Microsecond), w.CreatedAt)
	assert.Equal(t, w.CreatedAt, w.UpdatedAt)

	hunts := NewService[Hunt](KindHunt, newTestRepo[Hunt](), Options{})
	h, err := hunts.Create(ctx, Hunt{BirdID: birdA, StartTime: baseT.Add(999 * time.Nanosecond), EndTime: baseT.Add(time.Hour + 1), PreyType: "rabbit"})
	require.NoError(t, err)
	assert.Equal(t, baseT, h.StartTime)
	assert.Equal(t, baseT.Add(time.Hour), h.EndTime)
}

func TestWeight_Create_RejectsNonPositive(t *testing.T) {
	svc, _ := newWeights(t)

	_, err := svc.Create(context.Background(), Weight{BirdID: birdA, Value: 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(context.Background(), Weight{BirdID: birdA, Value: -3})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestWeight_FilterByWindow_AnchoredToLatest(t *testing.T) {
	svc, _ := newWeights(t)
	ctx := context.Background()
	// el reloj está un año después: con ancla "now" no saldría nada
	svc.now = fixedClock(baseT.AddDate(1, 0, 0))

	w1, err := svc.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT.Add(-24 * time.Hour)})
	require.NoError(t, err)
	w2, err := svc.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Weight{BirdID: birdA, Value: 990, WTime: baseT.AddDate(0, 0, -40)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Weight{BirdID: birdB, Value: 700, WTime: baseT})
	require.NoError(t, err)

	got, err := svc.FilterByWindow(ctx, birdA, intPtr(31))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, w2.ID, got[0].ID)
	assert.Equal(t, w1.ID, got[1].ID)

	// sin days => 30 por defecto
	got, err = svc.FilterByWindow(ctx, birdA, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWeight_FilterByWindow_RejectsNonPositiveDays(t *testing.T) {
	svc, _ := newWeights(t)

	for _, d := range []int{0, -1} {
		_, err := svc.FilterByWindow(context.Background(), birdA, intPtr(d))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "days=%d", d)
	}
}

func TestWeight_FilterByWindow_RejectsOversizedDays(t *testing.T) {
	svc, _ := newWeights(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT.Add(-24 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT})
	require.NoError(t, err)

	got, err := svc.FilterByWindow(ctx, birdA, intPtr(MaxWindowDays))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	for _, d := range []int{MaxWindowDays + 1, 200000000000000, 4611686018427387904} {
		_, err := svc.FilterByWindow(ctx, birdA, intPtr(d))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "days=%d", d)
	}
}

func TestWeight_FilterByWindow_EmptyBird(t *testing.T) {
	svc, _ := newWeights(t)

	got, err := svc.FilterByWindow(context.Background(), birdA, intPtr(7))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetByID_FailsClosed(t *testing.T) {
	svc, _ := newWeights(t)

	_, err := svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFeeding_WeightRefs(t *testing.T) {
	ctx := context.Background()
	weights, _ := newWeights(t)
	wA, err := weights.Create(ctx, Weight{BirdID: birdA, Value: 1000})
	require.NoError(t, err)
	wB, err := weights.Create(ctx, Weight{BirdID: birdB, Value: 800})
	require.NoError(t, err)

	svc := NewService[Feeding](KindFeeding, newTestRepo[Feeding](), Options{Weights: weights})
	svc.now = fixedClock(baseT)

	f, err := svc.Create(ctx, Feeding{BirdID: birdA, FoodType: "quail", Amount: 40, StartWeightID: wA.ID, EndWeightID: wA.ID})
	require.NoError(t, err)
	assert.Equal(t, baseT, f.FTime)

	// referencia a un pesaje de otra ave
	_, err = svc.Create(ctx, Feeding{BirdID: birdA, FoodType: "quail", StartWeightID: wA.ID, EndWeightID: wB.ID})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// referencia inexistente
	_, err = svc.Create(ctx, Feeding{BirdID: birdA, FoodType: "quail", StartWeightID: wA.ID, EndWeightID: uuid.NewString()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// ambos pesajes son obligatorios en feeding
	_, err = svc.Create(ctx, Feeding{BirdID: birdA, FoodType: "quail", StartWeightID: wA.ID})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFeeding_WindowAnchors(t *testing.T) {
	ctx := context.Background()
	weights, _ := newWeights(t)
	w1, err := weights.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT.Add(-24 * time.Hour)})
	require.NoError(t, err)
	w2, err := weights.Create(ctx, Weight{BirdID: birdA, Value: 1000, WTime: baseT})
	require.NoError(t, err)

	repo := newTestRepo[Feeding]()
	later := fixedClock(baseT.AddDate(0, 6, 0))

	latest := NewService[Feeding](KindFeeding, repo, Options{Weights: weights})
	latest.now = later
	_, err = latest.Create(ctx, Feeding{BirdID: birdA, FTime: baseT, FoodType: "chick", Amount: 30, StartWeightID: w1.ID, EndWeightID: w2.ID})
	require.NoError(t, err)

	got, err := latest.FilterByWindow(ctx, birdA, intPtr(31))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	got, err = latest.FilterByWindow(ctx, birdA, intPtr(1))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	wall := NewService[Feeding](KindFeeding, repo, Options{Anchor: NowAnchor{}, Weights: weights})
	wall.now = later
	got, err = wall.FilterByWindow(ctx, birdA, intPtr(1))
	require.NoError(t, err)
	assert.Empty(t, got)

	// sin days y sin default: todo el historial del ave
	got, err = wall.FilterByWindow(ctx, birdA, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBulkCreate_AllOrNothing(t *testing.T) {
	svc, repo := newWeights(t)

	err := svc.BulkCreate(context.Background(), []Weight{
		{BirdID: birdA, Value: 900},
		{BirdID: birdA, Value: -1},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.ErrorContains(t, err, "item 1")
	assert.Empty(t, repo.byID)

	err = svc.BulkCreate(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, svc.BulkCreate(context.Background(), []Weight{
		{BirdID: birdA, Value: 900},
		{BirdID: birdA, Value: 910},
	}))
	assert.Len(t, repo.byID, 2)
}

func TestHunt_Validation(t *testing.T) {
	svc := NewService[Hunt](KindHunt, newTestRepo[Hunt](), Options{})
	svc.now = fixedClock(baseT)
	ctx := context.Background()

	h, err := svc.Create(ctx, Hunt{BirdID: birdA, StartTime: baseT, EndTime: baseT.Add(time.Hour), PreyType: " rabbit ", PreyCount: 2})
	require.NoError(t, err)
	assert.Equal(t, "rabbit", h.PreyType)
	assert.Empty(t, h.StartWeightID)

	_, err = svc.Create(ctx, Hunt{BirdID: birdA, StartTime: baseT, EndTime: baseT.Add(-time.Minute), PreyType: "rabbit"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(ctx, Hunt{BirdID: birdA, StartTime: baseT, EndTime: baseT, PreyType: "rabbit", PreyCount: -1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTraining_DefaultPerformance(t *testing.T) {
	svc := NewService[Training](KindTraining, newTestRepo[Training](), Options{})
	svc.now = fixedClock(baseT)
	ctx := context.Background()

	tr, err := svc.Create(ctx, Training{BirdID: birdA, StartTime: baseT, EndTime: baseT.Add(30 * time.Minute), TrainingType: "lure"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPerformance, tr.Performance)

	tr, err = svc.Create(ctx, Training{BirdID: birdA, StartTime: baseT, EndTime: baseT, TrainingType: "creance", Performance: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, tr.Performance)

	_, err = svc.Create(ctx, Training{BirdID: birdA, StartTime: baseT, EndTime: baseT, TrainingType: "lure", Performance: -2})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
