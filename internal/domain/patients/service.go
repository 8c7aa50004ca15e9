package patients

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type UpsertInput struct {
	ID        string
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time
	OwnerName string
}

func (in UpsertInput) normalize(now time.Time) (Patient, error) {
	p := Patient{
		ID:        strings.TrimSpace(in.ID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		OwnerName: strings.TrimSpace(in.OwnerName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.ID == "" || p.Name == "" {
		return Patient{}, ErrInvalidInput
	}
	return p, nil
}

// Create registra un paciente nuevo; falla con storage.ErrDuplicateKey si el
// id ya está tomado.
func (s *Service) Create(ctx context.Context, in UpsertInput) (Patient, error) {
	p, err := in.normalize(s.now())
	if err != nil {
		return Patient{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Upsert registra o reemplaza el paciente identificado por el id de negocio.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Patient, error) {
	p, err := in.normalize(s.now())
	if err != nil {
		return Patient{}, err
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]Patient, error) {
	f.ID = strings.TrimSpace(f.ID)
	f.NameContains = strings.TrimSpace(f.NameContains)
	return s.repo.Find(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
