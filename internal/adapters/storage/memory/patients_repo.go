package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"registro-veterinaria/internal/domain/patients"
	"registro-veterinaria/internal/storage"
)

type patientsRepo struct {
	mu   sync.RWMutex
	byID map[string]patients.Patient
}

// currentName devuelve el nombre actual del paciente o nil si no existe.
func (r *patientsRepo) currentName(id string) *string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	name := p.Name
	return &name
}

func (r *patientsRepo) Create(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return storage.ErrDuplicateKey
	}
	r.byID[p.ID] = p
	return nil
}

func (r *patientsRepo) Upsert(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.byID[p.ID]; exists {
		p.CreatedAt = prev.CreatedAt
	}
	r.byID[p.ID] = p
	return nil
}

func (r *patientsRepo) Find(ctx context.Context, f patients.Filter) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub := strings.ToLower(f.NameContains)

	out := make([]patients.Patient, 0)
	for _, p := range r.byID {
		if f.ID != "" && p.ID != f.ID {
			continue
		}
		if sub != "" && !strings.Contains(strings.ToLower(p.Name), sub) {
			continue
		}
		out = append(out, p)
	}

	// Orden estable por fecha de alta, luego id.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *patientsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *patientsRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byID)), nil
}
