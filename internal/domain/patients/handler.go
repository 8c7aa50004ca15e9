package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"registro-veterinaria/internal/storage"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pacientes", func(pr chi.Router) {
		pr.Post("/", upsertPatientHandler(svc))
		pr.Get("/", findPatientsHandler(svc))
		pr.Delete("/{id}", deletePatientHandler(svc))
	})

	// Prueba de conexión contra el store activo.
	r.Get("/test", testHandler(svc))
}

type upsertPatientRequest struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Especie     string `json:"especie"`
	Raza        string `json:"raza"`
	Nacimiento  string `json:"nacimiento"` // YYYY-MM-DD, opcional
	Propietario string `json:"propietario"`
}

type Response struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Especie     string    `json:"especie"`
	Raza        string    `json:"raza"`
	Nacimiento  *string   `json:"nacimiento"` // YYYY-MM-DD o null
	Propietario string    `json:"propietario"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// upsertPatientHandler godoc
// @Summary Registrar paciente
// @Description Registra una mascota o reemplaza sus datos si el id ya existe (upsert por id de negocio).
// @Tags pacientes
// @Accept json
// @Produce json
// @Param payload body upsertPatientRequest true "Datos del paciente; nacimiento en formato YYYY-MM-DD o vacío"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any "datos inválidos"
// @Failure 503 {object} map[string]any "store no disponible"
// @Router /pacientes [post]
func upsertPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		bd, ok := parseOptionalDate(req.Nacimiento)
		if !ok {
			writeError(w, http.StatusBadRequest, "nacimiento debe ser YYYY-MM-DD")
			return
		}

		_, err := svc.Upsert(r.Context(), UpsertInput{
			ID:        req.ID,
			Name:      req.Nombre,
			Species:   req.Especie,
			Breed:     req.Raza,
			BirthDate: bd,
			OwnerName: req.Propietario,
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Paciente registrado",
		})
	}
}

// findPatientsHandler godoc
// @Summary Buscar pacientes
// @Description Busca por id exacto y/o substring de nombre (case-insensitive). Sin filtros devuelve todos.
// @Tags pacientes
// @Produce json
// @Param id query string false "ID exacto"
// @Param nombre query string false "Substring del nombre"
// @Success 200 {array} Response
// @Router /pacientes [get]
func findPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Find(r.Context(), Filter{
			ID:           r.URL.Query().Get("id"),
			NameContains: r.URL.Query().Get("nombre"),
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Paciente no encontrado")
				return
			}
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Paciente eliminado",
		})
	}
}

func testHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"mensaje":        "Conexión exitosa",
			"totalPacientes": total,
		})
	}
}

func ToResponse(p Patient) Response {
	var bd *string
	if p.BirthDate != nil {
		s := p.BirthDate.Format("2006-01-02")
		bd = &s
	}
	return Response{
		ID:          p.ID,
		Nombre:      p.Name,
		Especie:     p.Species,
		Raza:        p.Breed,
		Nacimiento:  bd,
		Propietario: p.OwnerName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// parseOptionalDate acepta vacío (=> nil) o YYYY-MM-DD.
func parseOptionalDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Datos inválidos")
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "ID ya existe")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "No encontrado")
	case errors.Is(err, storage.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Base de datos no disponible")
	default:
		writeError(w, http.StatusInternalServerError, "Error interno")
	}
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
