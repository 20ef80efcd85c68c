package falconers

import "time"

// PermitClass es la categoría de licencia del halconero.
// @Enum apprentice, general, master
type PermitClass string

const (
	PermitApprentice PermitClass = "apprentice"
	PermitGeneral    PermitClass = "general"
	PermitMaster     PermitClass = "master"
)

// Falconer es el usuario registrado dueño de aves.
// El ID viene del proveedor de identidad (subject del token) o lo provee el cliente.
type Falconer struct {
	ID string

	Name         string
	PermitClass  PermitClass
	PermitNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}
