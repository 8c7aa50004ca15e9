package consultations

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
	ID          string
	PatientID   string
	PatientName string
	Details     string
	Reason      string
	Date        time.Time
	Diagnosis   string
}

func (in UpsertInput) normalize(now time.Time) (Consultation, error) {
	c := Consultation{
		ID:          strings.TrimSpace(in.ID),
		PatientID:   strings.TrimSpace(in.PatientID),
		PatientName: strings.TrimSpace(in.PatientName),
		Details:     strings.TrimSpace(in.Details),
		Reason:      strings.TrimSpace(in.Reason),
		Date:        in.Date,
		Diagnosis:   strings.TrimSpace(in.Diagnosis),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// motivo y diagnostico son obligatorios; detallesPaciente queda en ""
	if c.ID == "" || c.PatientID == "" || c.Reason == "" || c.Diagnosis == "" {
		return Consultation{}, ErrInvalidInput
	}
	if c.Date.IsZero() {
		return Consultation{}, ErrInvalidInput
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in UpsertInput) (Consultation, error) {
	c, err := in.normalize(s.now())
	if err != nil {
		return Consultation{}, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Consultation{}, err
	}
	return c, nil
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (Consultation, error) {
	c, err := in.normalize(s.now())
	if err != nil {
		return Consultation{}, err
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return Consultation{}, err
	}
	return c, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]ConsultationWithOwner, error) {
	f.ID = strings.TrimSpace(f.ID)
	f.PatientID = strings.TrimSpace(f.PatientID)
	return s.repo.Find(ctx, f)
}

// ListByPatient devuelve las consultas de una mascota (vista con join).
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]ConsultationWithOwner, error) {
	return s.Find(ctx, Filter{PatientID: patientID})
}
