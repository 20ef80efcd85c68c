// Package respond centraliza la escritura de respuestas JSON y el mapeo de errores a status HTTP.
// Antes writeJSON vivía duplicado en cada módulo; con seis dominios ya conviene el helper común.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"mew-mate-api/internal/apperrors"

	"go.uber.org/zap"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Status traduce la taxonomía de apperrors a un status HTTP.
func Status(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe el error como texto plano.
// - 4xx: mensaje del error (describe la regla violada), salvo 401/403 que van sin detalle.
// - 5xx: "internal error" y el detalle solo al log.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := Status(err)
	switch status {
	case http.StatusUnauthorized:
		http.Error(w, "unauthorized", status)
	case http.StatusForbidden:
		http.Error(w, "forbidden", status)
	case http.StatusInternalServerError:
		if log != nil {
			log.Error("request failed", zap.Error(err))
		}
		http.Error(w, "internal error", status)
	default:
		http.Error(w, err.Error(), status)
	}
}

// Unauthorized es el atajo para handlers que no encuentran claims en el contexto.
func Unauthorized(w http.ResponseWriter) {
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
