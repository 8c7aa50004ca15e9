// Package history expone la vista combinada de historial por mascota:
// el paciente más sus consultas y registros de aseo.
package history

import (
	"encoding/json"
	"errors"
	"net/http"

	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/domain/patients"
	"registro-veterinaria/internal/storage"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, patientsSvc *patients.Service, consultationsSvc *consultations.Service, groomingSvc *grooming.Service) {
	r.Get("/historial/{idMascota}", historyHandler(patientsSvc, consultationsSvc, groomingSvc))
}

type historyResponse struct {
	Paciente  patients.Response        `json:"paciente"`
	Consultas []consultations.Response `json:"consultas"`
	Aseos     []grooming.Response      `json:"aseos"`
}

// historyHandler godoc
// @Summary Historial de una mascota
// @Description Devuelve el paciente junto con todas sus consultas y registros de aseo.
// @Tags historial
// @Produce json
// @Param idMascota path string true "ID de la mascota"
// @Success 200 {object} historyResponse
// @Failure 404 {object} map[string]any "mascota no encontrada"
// @Router /historial/{idMascota} [get]
func historyHandler(patientsSvc *patients.Service, consultationsSvc *consultations.Service, groomingSvc *grooming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "idMascota")

		found, err := patientsSvc.Find(r.Context(), patients.Filter{ID: id})
		if err != nil {
			writeStorageError(w, err)
			return
		}
		if len(found) == 0 {
			writeError(w, http.StatusNotFound, "Paciente no encontrado")
			return
		}

		consultas, err := consultationsSvc.ListByPatient(r.Context(), id)
		if err != nil {
			writeStorageError(w, err)
			return
		}

		aseos, err := groomingSvc.ListByPatient(r.Context(), id)
		if err != nil {
			writeStorageError(w, err)
			return
		}

		out := historyResponse{
			Paciente:  patients.ToResponse(found[0]),
			Consultas: make([]consultations.Response, 0, len(consultas)),
			Aseos:     make([]grooming.Response, 0, len(aseos)),
		}
		for _, c := range consultas {
			out.Consultas = append(out.Consultas, consultations.ToResponse(c))
		}
		for _, g := range aseos {
			out.Aseos = append(out.Aseos, grooming.ToResponse(g))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "Base de datos no disponible")
		return
	}
	writeError(w, http.StatusInternalServerError, "Error interno")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
