package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"mew-mate-api/internal/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify traduce errores del driver a la taxonomía de apperrors.
// Lo que no se reconoce se devuelve tal cual (=> 500).
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.Detail)
	case "23505": // unique_violation
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Detail)
	case "22P02", "22007", "22008": // invalid_text_representation, invalid_datetime_format, datetime_field_overflow
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, pgErr.Message)
	default:
		return err
	}
}

// notFound clasifica y, si no hay fila, nombra el recurso.
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(what)
	}
	return classify(err)
}

func txFailed(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrTransaction, classify(err))
}
