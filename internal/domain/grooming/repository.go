package grooming

import "context"

// Filter: match exacto por idAseo y/o idMascota, combinados con AND.
type Filter struct {
	ID        string
	PatientID string
}

type Repository interface {
	Create(ctx context.Context, g Grooming) error
	Upsert(ctx context.Context, g Grooming) error
	Find(ctx context.Context, f Filter) ([]Grooming, error)
}
