package postgres

import (
	"context"
	"database/sql"

	"mew-mate-api/internal/domain/falconers"
)

type FalconersRepo struct {
	db *sql.DB
}

func NewFalconersRepo(db *sql.DB) *FalconersRepo {
	return &FalconersRepo{db: db}
}

func (r *FalconersRepo) Create(ctx context.Context, f falconers.Falconer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO falconers (
			id, name, permit_class, permit_number,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		f.ID,
		f.Name,
		string(f.PermitClass),
		f.PermitNumber,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return classify(err)
}

func (r *FalconersRepo) GetByID(ctx context.Context, id string) (falconers.Falconer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, permit_class, permit_number, created_at, updated_at
		FROM falconers
		WHERE id = $1
	`, id)

	f, err := scanFalconer(row)
	if err != nil {
		return falconers.Falconer{}, notFound(err, "falconer")
	}
	return f, nil
}

func (r *FalconersRepo) List(ctx context.Context, limit, offset int) ([]falconers.Falconer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, permit_class, permit_number, created_at, updated_at
		FROM falconers
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]falconers.Falconer, 0)
	for rows.Next() {
		f, err := scanFalconer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFalconer(s rowScanner) (falconers.Falconer, error) {
	var f falconers.Falconer
	var class string
	if err := s.Scan(
		&f.ID,
		&f.Name,
		&class,
		&f.PermitNumber,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return falconers.Falconer{}, err
	}
	f.PermitClass = falconers.PermitClass(class)
	return f, nil
}
