package mongo

import (
	"context"
	"regexp"
	"time"

	"registro-veterinaria/internal/domain/patients"
	"registro-veterinaria/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patientDoc struct {
	ID          string     `bson:"id"`
	Nombre      string     `bson:"nombre"`
	Especie     string     `bson:"especie"`
	Raza        string     `bson:"raza"`
	Nacimiento  *time.Time `bson:"nacimiento"` // null cuando no hay fecha
	Propietario string     `bson:"propietario"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

func toPatientDoc(p patients.Patient) patientDoc {
	return patientDoc{
		ID:          p.ID,
		Nombre:      p.Name,
		Especie:     p.Species,
		Raza:        p.Breed,
		Nacimiento:  p.BirthDate,
		Propietario: p.OwnerName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d patientDoc) toDomain() patients.Patient {
	return patients.Patient{
		ID:        d.ID,
		Name:      d.Nombre,
		Species:   d.Especie,
		Breed:     d.Raza,
		BirthDate: d.Nacimiento,
		OwnerName: d.Propietario,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type PatientsRepo struct {
	client *Client
}

func NewPatientsRepo(client *Client) *PatientsRepo {
	return &PatientsRepo{client: client}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collPatients).InsertOne(ctx, toPatientDoc(p))
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

// Upsert matchea por la clave de negocio: reemplazo completo de los campos
// del documento, createdAt solo en el insert, updatedAt en cada escritura.
func (r *PatientsRepo) Upsert(ctx context.Context, p patients.Patient) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collPatients).UpdateOne(ctx,
		bson.M{"id": p.ID},
		bson.M{
			"$set": bson.M{
				"nombre":      p.Name,
				"especie":     p.Species,
				"raza":        p.Breed,
				"nacimiento":  p.BirthDate,
				"propietario": p.OwnerName,
				"updatedAt":   p.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"createdAt": p.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *PatientsRepo) Find(ctx context.Context, f patients.Filter) ([]patients.Patient, error) {
	db, err := r.client.Get(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if f.ID != "" {
		filter["id"] = f.ID
	}
	if f.NameContains != "" {
		// Substring case-insensitive; el patrón va escapado, nunca crudo.
		filter["nombre"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(f.NameContains),
			Options: "i",
		}
	}

	cur, err := db.Collection(collPatients).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]patients.Patient, 0)
	for cur.Next(ctx) {
		var d patientDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toDomain())
	}

	return out, cur.Err()
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	res, err := db.Collection(collPatients).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) Count(ctx context.Context) (int64, error) {
	db, err := r.client.Get(ctx)
	if err != nil {
		return 0, err
	}

	return db.Collection(collPatients).CountDocuments(ctx, bson.M{})
}
