package mongo

import (
	"context"
	"time"

	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type groomingDoc struct {
	IDAseo      string    `bson:"idAseo"`
	IDMascota   string    `bson:"idMascota"`
	TipoBanio   string    `bson:"tipoBanio"`
	EsAgresivo  bool      `bson:"esAgresivo"`
	FechaBanio  time.Time `bson:"fechaBanio"`
	Propietario string    `bson:"propietario"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func toGroomingDoc(g grooming.Grooming) groomingDoc {
	return groomingDoc{
		IDAseo:      g.ID,
		IDMascota:   g.PatientID,
		TipoBanio:   g.BathType,
		EsAgresivo:  g.Aggressive,
		FechaBanio:  g.Date,
		Propietario: g.OwnerName,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (d groomingDoc) toDomain() grooming.Grooming {
	return grooming.Grooming{
		ID:         d.IDAseo,
		PatientID:  d.IDMascota,
		BathType:   d.TipoBanio,
		Aggressive: d.EsAgresivo,
		Date:       d.FechaBanio,
		OwnerName:  d.Propietario,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type GroomingRepo struct {
	client *Client
}

func NewGroomingRepo(client *Client) *GroomingRepo {
	return &GroomingRepo{client: client}
}

func (r *GroomingRepo) Create(ctx context.Context, g grooming.Grooming) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collGrooming).InsertOne(ctx, toGroomingDoc(g))
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

func (r *GroomingRepo) Upsert(ctx context.Context, g grooming.Grooming) error {
	db, err := r.client.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(collGrooming).UpdateOne(ctx,
		bson.M{"idAseo": g.ID},
		bson.M{
			"$set": bson.M{
				"idMascota":   g.PatientID,
				"tipoBanio":   g.BathType,
				"esAgresivo":  g.Aggressive,
				"fechaBanio":  g.Date,
				"propietario": g.OwnerName,
				"updatedAt":   g.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"createdAt": g.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *GroomingRepo) Find(ctx context.Context, f grooming.Filter) ([]grooming.Grooming, error) {
	db, err := r.client.Get(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if f.ID != "" {
		filter["idAseo"] = f.ID
	}
	if f.PatientID != "" {
		filter["idMascota"] = f.PatientID
	}

	cur, err := db.Collection(collGrooming).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "idAseo", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]grooming.Grooming, 0)
	for cur.Next(ctx) {
		var d groomingDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toDomain())
	}

	return out, cur.Err()
}
