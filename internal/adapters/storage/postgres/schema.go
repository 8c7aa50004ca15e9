package postgres

import (
	"context"
	"database/sql"
)

// ensureSchema crea tablas e índices si no existen. Las constraints de
// unicidad sobre las claves de negocio y los índices de búsqueda deben estar
// antes de que el adaptador atienda la primera operación.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS pacientes (
		id          varchar(30) PRIMARY KEY,
		nombre      text NOT NULL,
		especie     text NOT NULL DEFAULT '',
		raza        text NOT NULL DEFAULT '',
		nacimiento  date,
		propietario text NOT NULL DEFAULT '',
		created_at  timestamptz NOT NULL,
		updated_at  timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pacientes_nombre ON pacientes (lower(nombre))`,
	`CREATE TABLE IF NOT EXISTS consultas (
		id_consulta       varchar(30) PRIMARY KEY,
		id_mascota        varchar(30) NOT NULL,
		nombre_paciente   text NOT NULL DEFAULT '',
		detalles_paciente text NOT NULL DEFAULT '',
		motivo            text NOT NULL,
		fecha             date NOT NULL,
		diagnostico       text NOT NULL,
		created_at        timestamptz NOT NULL,
		updated_at        timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultas_id_mascota ON consultas (id_mascota)`,
	`CREATE TABLE IF NOT EXISTS aseos (
		id_aseo     varchar(30) PRIMARY KEY,
		id_mascota  varchar(30) NOT NULL,
		tipo_banio  text NOT NULL DEFAULT '',
		es_agresivo boolean NOT NULL DEFAULT false,
		fecha_banio date NOT NULL,
		propietario text NOT NULL DEFAULT '',
		created_at  timestamptz NOT NULL,
		updated_at  timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_aseos_id_mascota ON aseos (id_mascota)`,
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
