package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/storage"
)

type ConsultationsRepo struct {
	pool *DB
}

func NewConsultationsRepo(pool *DB) *ConsultationsRepo {
	return &ConsultationsRepo{pool: pool}
}

func (r *ConsultationsRepo) Create(ctx context.Context, c consultations.Consultation) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO consultas (
			id_consulta, id_mascota, nombre_paciente, detalles_paciente,
			motivo, fecha, diagnostico,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		c.ID,
		c.PatientID,
		c.PatientName,
		c.Details,
		c.Reason,
		c.Date,
		c.Diagnosis,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if isDuplicate(err) {
		return storage.ErrDuplicateKey
	}
	return err
}

func (r *ConsultationsRepo) Upsert(ctx context.Context, c consultations.Consultation) error {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO consultas (
			id_consulta, id_mascota, nombre_paciente, detalles_paciente,
			motivo, fecha, diagnostico,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id_consulta) DO UPDATE SET
			id_mascota        = EXCLUDED.id_mascota,
			nombre_paciente   = EXCLUDED.nombre_paciente,
			detalles_paciente = EXCLUDED.detalles_paciente,
			motivo            = EXCLUDED.motivo,
			fecha             = EXCLUDED.fecha,
			diagnostico       = EXCLUDED.diagnostico,
			updated_at        = EXCLUDED.updated_at
	`,
		c.ID,
		c.PatientID,
		c.PatientName,
		c.Details,
		c.Reason,
		c.Date,
		c.Diagnosis,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// Find resuelve la vista con LEFT JOIN sobre pacientes: NombreMascota es el
// nombre actual del paciente, NULL si la mascota ya fue eliminada.
func (r *ConsultationsRepo) Find(ctx context.Context, f consultations.Filter) ([]consultations.ConsultationWithOwner, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return nil, err
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			c.id_consulta, c.id_mascota, c.nombre_paciente, c.detalles_paciente,
			c.motivo, c.fecha, c.diagnostico,
			c.created_at, c.updated_at,
			p.nombre AS nombre_mascota
		FROM consultas c
		LEFT JOIN pacientes p ON c.id_mascota = p.id
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if f.ID != "" {
		sb.WriteString(fmt.Sprintf(" AND c.id_consulta = $%d", argN))
		args = append(args, f.ID)
		argN++
	}
	if f.PatientID != "" {
		sb.WriteString(fmt.Sprintf(" AND c.id_mascota = $%d", argN))
		args = append(args, f.PatientID)
		argN++
	}

	sb.WriteString(" ORDER BY c.created_at ASC, c.id_consulta ASC")

	rows, err := db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultations.ConsultationWithOwner, 0)
	for rows.Next() {
		var c consultations.ConsultationWithOwner
		var owner sql.NullString
		if err := rows.Scan(
			&c.ID,
			&c.PatientID,
			&c.PatientName,
			&c.Details,
			&c.Reason,
			&c.Date,
			&c.Diagnosis,
			&c.CreatedAt,
			&c.UpdatedAt,
			&owner,
		); err != nil {
			return nil, err
		}

		if owner.Valid {
			name := owner.String
			c.OwnerPetName = &name
		}

		out = append(out, c)
	}

	return out, rows.Err()
}
