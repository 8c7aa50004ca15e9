package mongo

import (
	"context"
	"time"

	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type consultationDoc struct {
	IDConsulta       string    `bson:"idConsulta"`
	IDMascota        string    `bson:"idMascota"`
	NombrePaciente   string    `bson:"nombrePaciente"`
	DetallesPaciente string    `bson:"detallesPaciente"`
	Motivo           string    `bson:"motivo"`
	Fecha            time.Time `bson:"fecha"`
	Diagnostico      string    `bson:"diagnostico"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`

	// Solo en la vista agregada: nombre vivo del paciente referenciado.
	// omitempty para que los writes no persistan el campo de la proyección.
	NombreMascota *string `bson:"nombreMascota,omitempty"`
}

func toConsultationDoc(c consultations.Consultation) consultationDoc {
	return consultationDoc{
		IDConsulta:       c.ID,
		IDMascota:        c.PatientID,
		NombrePaciente:   c.PatientName,
		DetallesPaciente: c.Details,
		Motivo:           c.Reason,
		Fecha:            c.Date,
		Diagnostico:      c.Diagnosis,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (d consultationDoc) toDomain() consultations.ConsultationWithOwner {
	return consultations.ConsultationWithOwner{
		Consultation: consultations.Consultation{
			ID:          d.IDConsulta,
			PatientID:   d.IDMascota,
			PatientName: d.NombrePaciente,
			Details:     d.DetallesPaciente,
			Reason:      d.Motivo,
			Date:        d.Fecha,
			Diagnosis:   d.Diagnostico,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		},
		OwnerPetName: d.NombreMascota,
	}
}

type ConsultationsRepo struct {
	client *Client
}

func NewConsultationsRepo(client *Client) *ConsultationsRepo {
	return &ConsultationsRepo{client: client}
}

func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collConsultations).InsertOne(ctx, toConsultationDoc(c))
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

func (r *ConsultationsRepo) Upsert(ctx context.Context, c consultations.Consultation) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collConsultations).UpdateOne(ctx,
		bson.M{"idConsulta": c.ID},
		bson.M{
			"$set": bson.M{
				"idMascota":        c.PatientID,
				"nombrePaciente":   c.PatientName,
				"detallesPaciente": c.Details,
				"motivo":           c.Reason,
				"fecha":            c.Date,
				"diagnostico":      c.Diagnosis,
				"updatedAt":        c.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"createdAt": c.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Find arma el pipeline de agregación: filtros exactos opcionales, lookup
// left-outer contra pacientes por idMascota = id, proyección del nombre del
// paciente matcheado (null si no hay) y descarte del array crudo del join.
func (r *ConsultationsRepo) Find(ctx context.Context, f consultations.Filter) ([]consultations.ConsultationWithOwner, error) {
	db, err := r.client.Get(ctx)
	if err != nil {
		return nil, err
	}

	match := bson.M{}
	if f.ID != "" {
		match["idConsulta"] = f.ID
	}
	if f.PatientID != "" {
		match["idMascota"] = f.PatientID
	}

	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collPatients,
			"localField":   "idMascota",
			"foreignField": "id",
			"as":           "paciente",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"nombreMascota": bson.M{
				"$ifNull": bson.A{
					bson.M{"$arrayElemAt": bson.A{"$paciente.nombre", 0}},
					nil,
				},
			},
		}}},
		bson.D{{Key: "$unset", Value: "paciente"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "idConsulta", Value: 1}}}},
	)

	cur, err := db.Collection(collConsultations).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]consultations.ConsultationWithOwner, 0)
	for cur.Next(ctx) {
		var d consultationDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toDomain())
	}

	return out, cur.Err()
}
