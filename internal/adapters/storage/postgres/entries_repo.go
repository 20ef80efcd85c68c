package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mew-mate-api/internal/domain/logbook"
)

// entryTable describe cómo se persiste un tipo de registro del logbook.
type entryTable[T any] struct {
	name    string
	what    string // para mensajes de not found
	timeCol string
	columns []string
	args    func(T) []any
	scan    func(rowScanner) (T, error)
}

func (t entryTable[T]) selectCols() string { return strings.Join(t.columns, ", ") }

func (t entryTable[T]) insertSQL() string {
	ph := make([]string, len(t.columns))
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, t.selectCols(), strings.Join(ph, ","))
}

// EntryRepo implementa logbook.Repository[T] para cualquier tabla del logbook.
type EntryRepo[T any] struct {
	db *sql.DB
	t  entryTable[T]
}

func (r *EntryRepo[T]) Create(ctx context.Context, e T) error {
	_, err := r.db.ExecContext(ctx, r.t.insertSQL(), r.t.args(e)...)
	return classify(err)
}

func (r *EntryRepo[T]) BulkCreate(ctx context.Context, items []T) error {
	return bulkInsert(ctx, r.db, r.t.insertSQL(), items, r.t.args)
}

func (r *EntryRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.t.selectCols(), r.t.name)

	e, err := r.t.scan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		var zero T
		return zero, notFound(err, r.t.what)
	}
	return e, nil
}

func (r *EntryRepo[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC, id ASC LIMIT $1 OFFSET $2",
		r.t.selectCols(), r.t.name, r.t.timeCol)
	return r.query(ctx, q, limit, offset)
}

func (r *EntryRepo[T]) ListByBird(ctx context.Context, birdID string) ([]T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE bird_id = $1 ORDER BY %s DESC, id ASC",
		r.t.selectCols(), r.t.name, r.t.timeCol)
	return r.query(ctx, q, birdID)
}

// ListByBirdWindow filtra [From, To]; To nil deja la ventana abierta.
func (r *EntryRepo[T]) ListByBirdWindow(ctx context.Context, birdID string, w logbook.Window) ([]T, error) {
	var to sql.NullTime
	if w.To != nil {
		to = sql.NullTime{Time: *w.To, Valid: true}
	}

	q := fmt.Sprintf(`SELECT %[1]s FROM %[2]s
		WHERE bird_id = $1 AND %[3]s >= $2 AND ($3::timestamptz IS NULL OR %[3]s <= $3)
		ORDER BY %[3]s DESC, id ASC`,
		r.t.selectCols(), r.t.name, r.t.timeCol)
	return r.query(ctx, q, birdID, w.From, to)
}

func (r *EntryRepo[T]) LatestAt(ctx context.Context, birdID string) (time.Time, bool, error) {
	q := fmt.Sprintf("SELECT MAX(%s) FROM %s WHERE bird_id = $1", r.t.timeCol, r.t.name)

	var latest sql.NullTime
	if err := r.db.QueryRowContext(ctx, q, birdID).Scan(&latest); err != nil {
		return time.Time{}, false, classify(err)
	}
	return latest.Time, latest.Valid, nil
}

func (r *EntryRepo[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		e, err := r.t.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var (
	_ logbook.Repository[logbook.Weight]   = (*EntryRepo[logbook.Weight])(nil)
	_ logbook.Repository[logbook.Feeding]  = (*EntryRepo[logbook.Feeding])(nil)
	_ logbook.Repository[logbook.Hunt]     = (*EntryRepo[logbook.Hunt])(nil)
	_ logbook.Repository[logbook.Training] = (*EntryRepo[logbook.Training])(nil)
)
