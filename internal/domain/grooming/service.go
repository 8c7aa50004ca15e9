package grooming

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
	ID         string
	PatientID  string
	BathType   string
	Aggressive bool
	Date       time.Time
	OwnerName  string
}

func (in UpsertInput) normalize(now time.Time) (Grooming, error) {
	g := Grooming{
		ID:         strings.TrimSpace(in.ID),
		PatientID:  strings.TrimSpace(in.PatientID),
		BathType:   strings.TrimSpace(in.BathType),
		Aggressive: in.Aggressive,
		Date:       in.Date,
		OwnerName:  strings.TrimSpace(in.OwnerName),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if g.ID == "" || g.PatientID == "" {
		return Grooming{}, ErrInvalidInput
	}
	if g.Date.IsZero() {
		return Grooming{}, ErrInvalidInput
	}
	return g, nil
}

func (s *Service) Create(ctx context.Context, in UpsertInput) (Grooming, error) {
	g, err := in.normalize(s.now())
	if err != nil {
		return Grooming{}, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return Grooming{}, err
	}
	return g, nil
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Grooming, error) {
	g, err := in.normalize(s.now())
	if err != nil {
		return Grooming{}, err
	}
	if err := s.repo.Upsert(ctx, g); err != nil {
		return Grooming{}, err
	}
	return g, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]Grooming, error) {
	f.ID = strings.TrimSpace(f.ID)
	f.PatientID = strings.TrimSpace(f.PatientID)
	return s.repo.Find(ctx, f)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Grooming, error) {
	return s.Find(ctx, Filter{PatientID: patientID})
}
