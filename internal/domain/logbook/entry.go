// Package logbook agrupa los registros por ave: pesajes (Weight), alimentaciones
// (Feeding), cacerías (Hunt) y entrenamientos (Training).
//
// Los cuatro comparten el mismo ciclo de vida (create, bulk create, get, list,
// filtro por ave y ventana de días), así que hay un único Service y un único
// Repository genéricos parametrizados por tipo de registro.
package logbook

import (
	"strings"
	"time"

	"mew-mate-api/internal/apperrors"

	"github.com/google/uuid"
)

const (
	KindWeight   = "weight"
	KindFeeding  = "feeding"
	KindHunt     = "hunt"
	KindTraining = "training"
)

// Entry es la restricción que cumplen Weight, Feeding, Hunt y Training.
type Entry[T any] interface {
	EntryID() string
	EntryBirdID() string
	// Timestamp es el instante que ordena y filtra el registro (w_time, f_time o start_time).
	Timestamp() time.Time
	// WeightRefs devuelve los pesajes citados como inicio/fin. Los vacíos se omiten.
	WeightRefs() []WeightRef
	// Normalize valida, limpia strings y completa defaults (id, timestamps).
	Normalize(now time.Time) (T, error)
}

// WeightRef es una referencia (no ownership) a un pesaje de inicio o fin de sesión.
type WeightRef struct {
	Field string // start_weight_id | end_weight_id
	ID    string
}

func weightRefs(start, end string) []WeightRef {
	out := make([]WeightRef, 0, 2)
	if start != "" {
		out = append(out, WeightRef{Field: "start_weight_id", ID: start})
	}
	if end != "" {
		out = append(out, WeightRef{Field: "end_weight_id", ID: end})
	}
	return out
}

// entryID genera un UUID si no viene, o valida el provisto por el cliente.
func entryID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString(), nil
	}
	return requireUUID("id", id)
}

func requireUUID(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperrors.Invalid("%s is required", field)
	}
	u, err := uuid.Parse(v)
	if err != nil {
		return "", apperrors.Invalid("%s must be a UUID", field)
	}
	return u.String(), nil
}

func optionalUUID(field, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	return requireUUID(field, v)
}

// sessionSpan valida el intervalo de una cacería/entrenamiento.
func sessionSpan(start, end time.Time) error {
	if start.IsZero() {
		return apperrors.Invalid("start_time is required")
	}
	if end.IsZero() {
		return apperrors.Invalid("end_time is required")
	}
	if end.Before(start) {
		return apperrors.Invalid("end_time must not be before start_time")
	}
	return nil
}

// storedTime lleva un instante a UTC con la precisión de Postgres (µs), para que
// la respuesta del create coincida con un get posterior.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
