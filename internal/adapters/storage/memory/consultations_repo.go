package memory

import (
	"context"
	"sort"
	"sync"

	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/storage"
)

type consultationsRepo struct {
	mu       sync.RWMutex
	byID     map[string]consultations.Consultation
	patients *patientsRepo
}

func (r *consultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; exists {
		return storage.ErrDuplicateKey
	}
	r.byID[c.ID] = c
	return nil
}

func (r *consultationsRepo) Upsert(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.byID[c.ID]; exists {
		c.CreatedAt = prev.CreatedAt
	}
	r.byID[c.ID] = c
	return nil
}

func (r *consultationsRepo) Find(ctx context.Context, f consultations.Filter) ([]consultations.ConsultationWithOwner, error) {
	r.mu.RLock()
	matched := make([]consultations.Consultation, 0)
	for _, c := range r.byID {
		if f.ID != "" && c.ID != f.ID {
			continue
		}
		if f.PatientID != "" && c.PatientID != f.PatientID {
			continue
		}
		matched = append(matched, c)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	// El "join": nombre vivo del paciente, nil si ya no existe.
	out := make([]consultations.ConsultationWithOwner, 0, len(matched))
	for _, c := range matched {
		out = append(out, consultations.ConsultationWithOwner{
			Consultation: c,
			OwnerPetName: r.patients.currentName(c.PatientID),
		})
	}

	return out, nil
}
