package falconers

import "context"

type Repository interface {
	Create(ctx context.Context, f Falconer) error
	GetByID(ctx context.Context, id string) (Falconer, error)
	List(ctx context.Context, limit, offset int) ([]Falconer, error)
}
