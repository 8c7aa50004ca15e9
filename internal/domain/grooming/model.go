package grooming

import "time"

// Grooming representa un registro de aseo (baño) de una mascota.
type Grooming struct {
	ID         string // idAseo, clave de negocio
	PatientID  string // idMascota; referencia no validada
	BathType   string // tipoBanio
	Aggressive bool   // esAgresivo
	Date       time.Time
	OwnerName  string // propietario

	CreatedAt time.Time
	UpdatedAt time.Time
}
