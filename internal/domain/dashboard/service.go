// Package dashboard arma la vista completa de un ave: sus datos más todos
// sus pesajes, alimentaciones, cacerías y entrenamientos.
package dashboard

import (
	"context"

	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/logbook"

	"golang.org/x/sync/errgroup"
)

type BirdReader interface {
	GetByID(ctx context.Context, id string) (birds.Bird, error)
}

type EntryLister[T any] interface {
	ListByBird(ctx context.Context, birdID string) ([]T, error)
}

type Dashboard struct {
	Bird      birds.Bird
	Weights   []logbook.Weight
	Feedings  []logbook.Feeding
	Hunts     []logbook.Hunt
	Trainings []logbook.Training
}

type Service struct {
	birds     BirdReader
	weights   EntryLister[logbook.Weight]
	feedings  EntryLister[logbook.Feeding]
	hunts     EntryLister[logbook.Hunt]
	trainings EntryLister[logbook.Training]
}

func NewService(
	b BirdReader,
	weights EntryLister[logbook.Weight],
	feedings EntryLister[logbook.Feeding],
	hunts EntryLister[logbook.Hunt],
	trainings EntryLister[logbook.Training],
) *Service {
	return &Service{
		birds:     b,
		weights:   weights,
		feedings:  feedings,
		hunts:     hunts,
		trainings: trainings,
	}
}

// Get valida el ave primero (404 si no existe) y luego carga los cuatro
// historiales en paralelo.
func (s *Service) Get(ctx context.Context, birdID string) (Dashboard, error) {
	b, err := s.birds.GetByID(ctx, birdID)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{Bird: b}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Weights, err = s.weights.ListByBird(gctx, b.ID)
		return err
	})
	g.Go(func() (err error) {
		d.Feedings, err = s.feedings.ListByBird(gctx, b.ID)
		return err
	})
	g.Go(func() (err error) {
		d.Hunts, err = s.hunts.ListByBird(gctx, b.ID)
		return err
	})
	g.Go(func() (err error) {
		d.Trainings, err = s.trainings.ListByBird(gctx, b.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
