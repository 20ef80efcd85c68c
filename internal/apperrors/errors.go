// Package apperrors define la taxonomía de errores compartida entre dominios.
// Los handlers son los únicos que traducen estos errores a status HTTP.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrTransaction     = errors.New("transaction failed")
)

// Invalid envuelve ErrInvalidInput con el detalle de la regla violada.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound envuelve ErrNotFound indicando qué recurso faltó.
func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}
