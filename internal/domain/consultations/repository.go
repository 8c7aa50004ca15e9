package consultations

import "context"

// Filter restringe la búsqueda; ambos campos son match exacto y se combinan
// con AND cuando vienen los dos.
type Filter struct {
	ID        string // idConsulta
	PatientID string // idMascota
}

type Repository interface {
	// Create inserta estrictamente; storage.ErrDuplicateKey si idConsulta existe.
	Create(ctx context.Context, c Consultation) error

	// Upsert inserta o reemplaza por idConsulta conservando CreatedAt.
	Upsert(ctx context.Context, c Consultation) error

	// Find devuelve la vista con el nombre actual del paciente (join en el
	// store: LEFT JOIN relacional, $lookup en documentos).
	Find(ctx context.Context, f Filter) ([]ConsultationWithOwner, error)
}
