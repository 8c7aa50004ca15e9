package consultations

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Consultation
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Consultation{}}
}

func (r *testRepo) Create(ctx context.Context, c Consultation) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Upsert(ctx context.Context, c Consultation) error {
	if prev, ok := r.byID[c.ID]; ok {
		c.CreatedAt = prev.CreatedAt
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Find(ctx context.Context, f Filter) ([]ConsultationWithOwner, error) {
	out := make([]ConsultationWithOwner, 0)
	for _, c := range r.byID {
		if f.ID != "" && c.ID != f.ID {
			continue
		}
		if f.PatientID != "" && c.PatientID != f.PatientID {
			continue
		}
		out = append(out, ConsultationWithOwner{Consultation: c})
	}
	return out, nil
}

func validInput() UpsertInput {
	return UpsertInput{
		ID:        "C1",
		PatientID: "PET001",
		Reason:    "checkup",
		Date:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Diagnosis: "healthy",
	}
}

func TestService_Upsert_CamposObligatorios(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	mutations := []func(*UpsertInput){
		func(in *UpsertInput) { in.ID = "" },
		func(in *UpsertInput) { in.PatientID = "" },
		func(in *UpsertInput) { in.Reason = "  " },
		func(in *UpsertInput) { in.Diagnosis = "" },
		func(in *UpsertInput) { in.Date = time.Time{} },
	}
	for i, mutate := range mutations {
		in := validInput()
		mutate(&in)
		if _, err := svc.Upsert(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Upsert_DetallesOpcionales(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validInput()
	in.Details = "" // opcional, queda en ""
	in.PatientName = "  Luke  "

	c, err := svc.Upsert(context.Background(), in)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if c.Details != "" {
		t.Fatalf("expected empty details, got %q", c.Details)
	}
	if c.PatientName != "Luke" {
		t.Fatalf("expected trimmed snapshot name, got %q", c.PatientName)
	}
}

func TestService_Upsert_NoValidaReferencia(t *testing.T) {
	// idMascota colgante se acepta: no se chequea contra pacientes.
	svc := NewService(newTestRepo())

	in := validInput()
	in.PatientID = "NO-EXISTE"

	if _, err := svc.Upsert(context.Background(), in); err != nil {
		t.Fatalf("expected dangling reference accepted, got %v", err)
	}
}

func TestService_ListByPatient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	a := validInput()
	b := validInput()
	b.ID = "C2"
	c := validInput()
	c.ID = "C3"
	c.PatientID = "PET002"

	for _, in := range []UpsertInput{a, b, c} {
		if _, err := svc.Upsert(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.ID, err)
		}
	}

	got, err := svc.ListByPatient(ctx, "PET001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 consultations for PET001, got %d", len(got))
	}
}
