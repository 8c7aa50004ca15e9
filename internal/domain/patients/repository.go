package patients

import "context"

// Filter restringe la búsqueda de pacientes. ID es match exacto;
// NameContains es substring case-insensitive. Filtro vacío => todos.
type Filter struct {
	ID           string
	NameContains string
}

// Repository es el contrato agnóstico de almacenamiento. Las tres
// implementaciones (postgres, mongo, memory) comparten semántica:
// Create estricto y Upsert que conserva CreatedAt.
type Repository interface {
	// Create inserta un paciente nuevo. Si el id ya existe devuelve
	// storage.ErrDuplicateKey.
	Create(ctx context.Context, p Patient) error

	// Upsert inserta o reemplaza los campos de negocio. En update conserva
	// CreatedAt y refresca UpdatedAt.
	Upsert(ctx context.Context, p Patient) error

	Find(ctx context.Context, f Filter) ([]Patient, error)

	// Delete elimina por id. storage.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}
