// Package memory implementa los repositorios sobre maps en memoria. Es el
// backend por defecto en desarrollo y el que usan los tests end-to-end.
package memory

import (
	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/domain/patients"
)

// Store agrupa las tres "colecciones" en memoria. El repo de consultas
// necesita leer pacientes para resolver el nombre vivo en la vista join.
type Store struct {
	patients      *patientsRepo
	consultations *consultationsRepo
	grooming      *groomingRepo
}

func NewStore() *Store {
	p := &patientsRepo{byID: make(map[string]patients.Patient)}
	return &Store{
		patients:      p,
		consultations: &consultationsRepo{byID: make(map[string]consultations.Consultation), patients: p},
		grooming:      &groomingRepo{byID: make(map[string]grooming.Grooming)},
	}
}

func (s *Store) Patients() patients.Repository           { return s.patients }
func (s *Store) Consultations() consultations.Repository { return s.consultations }
func (s *Store) Grooming() grooming.Repository           { return s.grooming }
