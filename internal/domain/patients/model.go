package patients

import "time"

// Patient representa a un animal registrado en la clínica.
// El ID es la clave de negocio que suministra el cliente (p.ej. "PET001"),
// no un surrogate generado por el servidor.
type Patient struct {
	ID        string
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time // fecha de nacimiento, opcional (DATE sin hora)
	OwnerName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
