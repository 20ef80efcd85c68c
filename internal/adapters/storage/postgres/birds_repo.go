package postgres

import (
	"context"
	"database/sql"

	"mew-mate-api/internal/apperrors"
	"mew-mate-api/internal/domain/birds"
)

type BirdsRepo struct {
	db *sql.DB
}

func NewBirdsRepo(db *sql.DB) *BirdsRepo {
	return &BirdsRepo{db: db}
}

const insertBird = `
	INSERT INTO birds (
		id, falconer_id,
		name, gender, species, trap_date,
		created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`

func birdArgs(b birds.Bird) []any {
	return []any{
		b.ID,
		b.FalconerID,
		b.Name,
		string(b.Gender),
		b.Species,
		b.TrapDate,
		b.CreatedAt,
		b.UpdatedAt,
	}
}

func (r *BirdsRepo) Create(ctx context.Context, b birds.Bird) error {
	_, err := r.db.ExecContext(ctx, insertBird, birdArgs(b)...)
	return classify(err)
}

func (r *BirdsRepo) BulkCreate(ctx context.Context, items []birds.Bird) error {
	return bulkInsert(ctx, r.db, insertBird, items, birdArgs)
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, falconer_id, name, gender, species, trap_date, created_at, updated_at
		FROM birds
		WHERE id = $1
	`, id)

	b, err := scanBird(row)
	if err != nil {
		return birds.Bird{}, notFound(err, "bird")
	}
	return b, nil
}

func (r *BirdsRepo) ListByFalconer(ctx context.Context, falconerID string) ([]birds.Bird, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, falconer_id, name, gender, species, trap_date, created_at, updated_at
		FROM birds
		WHERE falconer_id = $1
		ORDER BY created_at ASC, id ASC
	`, falconerID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]birds.Bird, 0)
	for rows.Next() {
		b, err := scanBird(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete se apoya en ON DELETE CASCADE para los registros hijos.
func (r *BirdsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM birds WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.NotFound("bird")
	}
	return nil
}

func scanBird(s rowScanner) (birds.Bird, error) {
	var b birds.Bird
	var gender string
	if err := s.Scan(
		&b.ID,
		&b.FalconerID,
		&b.Name,
		&gender,
		&b.Species,
		&b.TrapDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return birds.Bird{}, err
	}
	b.Gender = birds.Gender(gender)
	return b, nil
}
