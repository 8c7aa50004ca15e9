package grooming

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Grooming
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Grooming{}}
}

func (r *testRepo) Create(ctx context.Context, g Grooming) error {
	if _, ok := r.byID[g.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Upsert(ctx context.Context, g Grooming) error {
	if prev, ok := r.byID[g.ID]; ok {
		g.CreatedAt = prev.CreatedAt
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Find(ctx context.Context, f Filter) ([]Grooming, error) {
	out := make([]Grooming, 0)
	for _, g := range r.byID {
		if f.ID != "" && g.ID != f.ID {
			continue
		}
		if f.PatientID != "" && g.PatientID != f.PatientID {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func validInput() UpsertInput {
	return UpsertInput{
		ID:         "A1",
		PatientID:  "PET001",
		BathType:   "medicado",
		Aggressive: false,
		Date:       time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
		OwnerName:  "Fresy",
	}
}

func TestService_Upsert_CamposObligatorios(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*UpsertInput)
	}{
		{"sin idAseo", func(in *UpsertInput) { in.ID = "   " }},
		{"sin idMascota", func(in *UpsertInput) { in.PatientID = "" }},
		{"sin fecha", func(in *UpsertInput) { in.Date = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Upsert(ctx, in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Upsert_NormalizaYTimestamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	in := validInput()
	in.ID = "  A1  "
	in.BathType = "  medicado "
	in.OwnerName = " Fresy "

	g, err := svc.Upsert(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.ID != "A1" || g.BathType != "medicado" || g.OwnerName != "Fresy" {
		t.Fatalf("expected trimmed fields, got %+v", g)
	}
	if !g.CreatedAt.Equal(now) || !g.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", now, g.CreatedAt, g.UpdatedAt)
	}
	if _, ok := repo.byID["A1"]; !ok {
		t.Fatalf("expected record stored under trimmed id, repo=%v", repo.byID)
	}
}

func TestService_Create_PropagaError(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, validInput()); err == nil {
		t.Fatal("expected repo error on duplicate create")
	}
}

func TestService_ListByPatient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for _, in := range []UpsertInput{
		{ID: "A1", PatientID: "PET001", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "A2", PatientID: "PET001", Date: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "A3", PatientID: "PET002", Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
	} {
		if _, err := svc.Upsert(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.ID, err)
		}
	}

	got, err := svc.ListByPatient(ctx, "PET001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records for PET001, got %d", len(got))
	}
}
