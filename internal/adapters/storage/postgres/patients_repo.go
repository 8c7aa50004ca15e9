package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"registro-veterinaria/internal/domain/patients"
	"registro-veterinaria/internal/storage"
)

type PatientsRepo struct {
	pool *DB
}

func NewPatientsRepo(pool *DB) *PatientsRepo {
	return &PatientsRepo{pool: pool}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO pacientes (
			id, nombre, especie, raza, nacimiento, propietario,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		toNullDate(p.BirthDate),
		p.OwnerName,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isDuplicate(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

// Upsert reemplaza todos los campos de negocio; created_at se conserva en el
// camino de update y updated_at se refresca siempre.
func (r *PatientsRepo) Upsert(ctx context.Context, p patients.Patient) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO pacientes (
			id, nombre, especie, raza, nacimiento, propietario,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			nombre      = EXCLUDED.nombre,
			especie     = EXCLUDED.especie,
			raza        = EXCLUDED.raza,
			nacimiento  = EXCLUDED.nacimiento,
			propietario = EXCLUDED.propietario,
			updated_at  = EXCLUDED.updated_at
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		toNullDate(p.BirthDate),
		p.OwnerName,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) Find(ctx context.Context, f patients.Filter) ([]patients.Patient, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return nil, err
	}

	query, args := buildPatientsQuery(f)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		var bd sql.NullTime
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&bd,
			&p.OwnerName,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if bd.Valid {
			t := bd.Time
			p.BirthDate = &t
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

// buildPatientsQuery arma las cláusulas dinámicamente pero los valores van
// siempre como parámetros posicionales, nunca interpolados en el texto.
func buildPatientsQuery(f patients.Filter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, nombre, especie, raza, nacimiento, propietario,
			created_at, updated_at
		FROM pacientes
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if f.ID != "" {
		sb.WriteString(fmt.Sprintf(" AND id = $%d", argN))
		args = append(args, f.ID)
		argN++
	}
	if f.NameContains != "" {
		sb.WriteString(fmt.Sprintf(" AND nombre ILIKE $%d", argN))
		args = append(args, "%"+escapeLike(f.NameContains)+"%")
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC, id ASC")

	return sb.String(), args
}

// escapeLike escapa los metacaracteres de LIKE para que el filtro sea un
// substring literal; los otros backends hacen match literal y este adaptador
// no debe divergir.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) Count(ctx context.Context) (int64, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pacientes`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// nacimiento es DATE nullable; va como NullTime.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
