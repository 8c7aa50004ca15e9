package consultations

import "time"

// Consultation representa una visita clínica ligada a un paciente por
// PatientID. PatientName es el snapshot del nombre al momento de registrar
// la consulta; no se vuelve a derivar del paciente.
type Consultation struct {
	ID          string // idConsulta, clave de negocio
	PatientID   string // idMascota; referencia no validada (se acepta colgante)
	PatientName string // nombrePaciente, snapshot denormalizado
	Details     string // detallesPaciente, opcional (default "")
	Reason      string // motivo, requerido
	Date        time.Time
	Diagnosis   string // diagnostico, requerido

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsultationWithOwner es la vista de lectura: la consulta más el nombre
// ACTUAL del paciente referenciado (nil si ya no existe). Puede divergir del
// snapshot PatientName y ambos se conservan.
type ConsultationWithOwner struct {
	Consultation
	OwnerPetName *string
}
