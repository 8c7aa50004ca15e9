// Package mongo implementa los repositorios sobre MongoDB con el driver
// oficial. Colecciones: pacientes, consultas y aseos, con la clave de
// negocio como campo indexado único (no el _id).
package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"registro-veterinaria/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collPatients      = "pacientes"
	collConsultations = "consultas"
	collGrooming      = "aseos"
)

// Client es el handle perezoso compartido del proceso, análogo a postgres.DB:
// desconectado hasta el primer uso, conectado (y con índices asegurados) de
// ahí en adelante; un intento fallido se reporta y el siguiente caller
// reintenta. Sin reintentos automáticos ni backoff.
type Client struct {
	uri    string
	dbName string

	mu  sync.Mutex
	cli *mongo.Client
	db  *mongo.Database
}

func NewClient(uri, dbName string) *Client {
	return &Client{uri: uri, dbName: dbName}
}

// Get devuelve la base conectada, estableciendo la conexión y los índices en
// el primer uso. Los índices deben existir antes de atender operaciones.
func (c *Client) Get(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	opts := options.Client().
		ApplyURI(c.uri).
		SetServerSelectionTimeout(3 * time.Second)

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := cli.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	db := cli.Database(c.dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	c.cli = cli
	c.db = db
	return c.db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collPatients).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "nombre", Value: "text"}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collConsultations).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idConsulta", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "idMascota", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collGrooming).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idAseo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "idMascota", Value: 1}},
		},
	})
	return err
}
