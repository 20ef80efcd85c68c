package birds

import "time"

// Gender del ave. No se valida contra un catálogo: en cetrería se usan
// también términos como "tiercel" para el macho.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Bird es un ave registrada por un halconero.
// Borrar un Bird elimina en cascada sus pesajes, alimentaciones, cacerías y entrenamientos.
type Bird struct {
	ID         string
	FalconerID string

	Name    string
	Gender  Gender
	Species string

	TrapDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
