package birds

import "context"

type Repository interface {
	Create(ctx context.Context, b Bird) error
	// BulkCreate inserta todo o nada en una sola transacción.
	BulkCreate(ctx context.Context, items []Bird) error
	GetByID(ctx context.Context, id string) (Bird, error)
	ListByFalconer(ctx context.Context, falconerID string) ([]Bird, error)
	// Delete borra el ave y, en cascada, todos sus registros hijos.
	Delete(ctx context.Context, id string) error
}
