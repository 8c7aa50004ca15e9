package postgres

import (
	"context"
	"fmt"
	"strings"

	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/storage"
)

type GroomingRepo struct {
	pool *DB
}

func NewGroomingRepo(pool *DB) *GroomingRepo {
	return &GroomingRepo{pool: pool}
}

func (r *GroomingRepo) Create(ctx context.Context, g grooming.Grooming) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO aseos (
			id_aseo, id_mascota, tipo_banio, es_agresivo, fecha_banio, propietario,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		g.ID,
		g.PatientID,
		g.BathType,
		g.Aggressive,
		g.Date,
		g.OwnerName,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if isDuplicate(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

func (r *GroomingRepo) Upsert(ctx context.Context, g grooming.Grooming) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO aseos (
			id_aseo, id_mascota, tipo_banio, es_agresivo, fecha_banio, propietario,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id_aseo) DO UPDATE SET
			id_mascota  = EXCLUDED.id_mascota,
			tipo_banio  = EXCLUDED.tipo_banio,
			es_agresivo = EXCLUDED.es_agresivo,
			fecha_banio = EXCLUDED.fecha_banio,
			propietario = EXCLUDED.propietario,
			updated_at  = EXCLUDED.updated_at
	`,
		g.ID,
		g.PatientID,
		g.BathType,
		g.Aggressive,
		g.Date,
		g.OwnerName,
		g.CreatedAt,
		g.UpdatedAt,
	)
	return err
}

func (r *GroomingRepo) Find(ctx context.Context, f grooming.Filter) ([]grooming.Grooming, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return nil, err
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id_aseo, id_mascota, tipo_banio, es_agresivo, fecha_banio, propietario,
			created_at, updated_at
		FROM aseos
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if f.ID != "" {
		sb.WriteString(fmt.Sprintf(" AND id_aseo = $%d", argN))
		args = append(args, f.ID)
		argN++
	}
	if f.PatientID != "" {
		sb.WriteString(fmt.Sprintf(" AND id_mascota = $%d", argN))
		args = append(args, f.PatientID)
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC, id_aseo ASC")

	rows, err := db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]grooming.Grooming, 0)
	for rows.Next() {
		var g grooming.Grooming
		if err := rows.Scan(
			&g.ID,
			&g.PatientID,
			&g.BathType,
			&g.Aggressive,
			&g.Date,
			&g.OwnerName,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, rows.Err()
}
