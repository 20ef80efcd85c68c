package postgres

import (
	"context"
	"database/sql"
)

// bulkInsert ejecuta el mismo INSERT para cada item dentro de una transacción.
// Si uno falla se hace rollback y no queda nada persistido.
func bulkInsert[T any](ctx context.Context, db *sql.DB, query string, items []T, args func(T) []any) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return txFailed(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return txFailed(err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err = stmt.ExecContext(ctx, args(it)...); err != nil {
			return txFailed(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return txFailed(err)
	}
	return nil
}
