// Package postgres implementa los repositorios sobre PostgreSQL vía
// database/sql con el driver pgx.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"registro-veterinaria/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB es el handle perezoso compartido por todos los repos del proceso.
// Estados: desconectado (db == nil), conectando (mutex tomado durante el
// intento) y conectado (db != nil, reutilizado de ahí en adelante). Un
// intento fallido deja el handle desconectado y el error se propaga; el
// siguiente caller vuelve a intentar. Sin reintentos automáticos ni backoff.
type DB struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Get devuelve el pool conectado, estableciéndolo en el primer uso.
func (d *DB) Get(ctx context.Context) (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	db, err := sql.Open("pgx", d.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}

	d.db = db
	return d.db, nil
}

// isDuplicate detecta violación de constraint de unicidad (SQLSTATE 23505).
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
