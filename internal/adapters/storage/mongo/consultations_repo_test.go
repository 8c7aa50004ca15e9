package mongo

import (
	"testing"
	"time"

	"registro-veterinaria/internal/domain/consultations"

	"go.mongodb.org/mongo-driver/bson"
)

func TestConsultationDoc_NoPersisteCampoDeVista(t *testing.T) {
	// nombreMascota existe solo en la vista agregada; el documento que se
	// inserta no debe llevarlo puesto en null.
	doc := toConsultationDoc(consultations.Consultation{
		ID:        "C1",
		PatientID: "PET001",
		Reason:    "checkup",
		Date:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Diagnosis: "healthy",
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	})

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := m["nombreMascota"]; ok {
		t.Fatalf("stored document carries view field nombreMascota: %v", m)
	}
	if m["idConsulta"] != "C1" || m["idMascota"] != "PET001" {
		t.Fatalf("unexpected stored fields: %v", m)
	}
}

func TestConsultationDoc_VistaConNombreVivo(t *testing.T) {
	// El decode de la vista agregada sí trae el campo, y nil significa que la
	// mascota referenciada ya no existe.
	name := "Luke"
	d := consultationDoc{
		IDConsulta:    "C1",
		IDMascota:     "PET001",
		NombreMascota: &name,
	}

	got := d.toDomain()
	if got.OwnerPetName == nil || *got.OwnerPetName != "Luke" {
		t.Fatalf("expected live name Luke, got %v", got.OwnerPetName)
	}

	d.NombreMascota = nil
	if got := d.toDomain(); got.OwnerPetName != nil {
		t.Fatalf("expected nil live name, got %v", *got.OwnerPetName)
	}
}
