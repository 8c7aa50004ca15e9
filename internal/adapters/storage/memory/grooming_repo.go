package memory

import (
	"context"
	"sort"
	"sync"

	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/storage"
)

type groomingRepo struct {
	mu   sync.RWMutex
	byID map[string]grooming.Grooming
}

func (r *groomingRepo) Create(ctx context.Context, g grooming.Grooming) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[g.ID]; exists {
		return storage.ErrDuplicateKey
	}
	r.byID[g.ID] = g
	return nil
}

func (r *groomingRepo) Upsert(ctx context.Context, g grooming.Grooming) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.byID[g.ID]; exists {
		g.CreatedAt = prev.CreatedAt
	}
	r.byID[g.ID] = g
	return nil
}

func (r *groomingRepo) Find(ctx context.Context, f grooming.Filter) ([]grooming.Grooming, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]grooming.Grooming, 0)
	for _, g := range r.byID {
		if f.ID != "" && g.ID != f.ID {
			continue
		}
		if f.PatientID != "" && g.PatientID != f.PatientID {
			continue
		}
		out = append(out, g)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
