package logbook

import (
	"context"
	"time"
)

// Repository es el puerto de persistencia común a los cuatro tipos de registro.
// Los listados por ave vienen ordenados del más reciente al más antiguo.
type Repository[T any] interface {
	Create(ctx context.Context, e T) error
	// BulkCreate inserta todo o nada en una sola transacción.
	BulkCreate(ctx context.Context, items []T) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context, limit, offset int) ([]T, error)
	ListByBird(ctx context.Context, birdID string) ([]T, error)
	ListByBirdWindow(ctx context.Context, birdID string, w Window) ([]T, error)
	LatestAt(ctx context.Context, birdID string) (time.Time, bool, error)
}
