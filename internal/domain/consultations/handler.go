package consultations

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
	r.Route("/consultas", func(cr chi.Router) {
		cr.Post("/", upsertConsultationHandler(svc))
		cr.Get("/", findConsultationsHandler(svc))
	})
}

type upsertConsultationRequest struct {
	IDConsulta       string `json:"idConsulta"`
	IDMascota        string `json:"idMascota"`
	NombrePaciente   string `json:"nombrePaciente"`
	DetallesPaciente string `json:"detallesPaciente"`
	Motivo           string `json:"motivo"`
	Fecha            string `json:"fecha"` // YYYY-MM-DD
	Diagnostico      string `json:"diagnostico"`
}

// Response conserva las dos variantes del nombre: el snapshot
// tomado al registrar (nombrePaciente) y el nombre vivo del paciente
// (NombreMascota, null si la mascota fue eliminada).
type Response struct {
	IDConsulta       string    `json:"idConsulta"`
	IDMascota        string    `json:"idMascota"`
	NombrePaciente   string    `json:"nombrePaciente"`
	DetallesPaciente string    `json:"detallesPaciente"`
	Motivo           string    `json:"motivo"`
	Fecha            string    `json:"fecha"`
	Diagnostico      string    `json:"diagnostico"`
	NombreMascota    *string   `json:"NombreMascota"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// upsertConsultationHandler godoc
// @Summary Registrar consulta
// @Description Registra una visita clínica o reemplaza sus datos si idConsulta ya existe. La referencia idMascota no se valida contra pacientes existentes.
// @Tags consultas
// @Accept json
// @Produce json
// @Param payload body upsertConsultationRequest true "Datos de la consulta; fecha en formato YYYY-MM-DD"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any "datos inválidos"
// @Failure 503 {object} map[string]any "store no disponible"
// @Router /consultas [post]
func upsertConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertConsultationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		fecha, err := time.Parse("2006-01-02", strings.TrimSpace(req.Fecha))
		if err != nil {
			writeError(w, http.StatusBadRequest, "fecha debe ser YYYY-MM-DD")
			return
		}

		_, err = svc.Upsert(r.Context(), UpsertInput{
			ID:          req.IDConsulta,
			PatientID:   req.IDMascota,
			PatientName: req.NombrePaciente,
			Details:     req.DetallesPaciente,
			Reason:      req.Motivo,
			Date:        fecha,
			Diagnosis:   req.Diagnostico,
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Consulta registrada",
		})
	}
}

func findConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Find(r.Context(), Filter{
			ID:        r.URL.Query().Get("idConsulta"),
			PatientID: r.URL.Query().Get("idMascota"),
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, c := range items {
			out = append(out, ToResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ToResponse expone el shape JSON de la vista; lo reusa el historial.
func ToResponse(c ConsultationWithOwner) Response {
	return Response{
		IDConsulta:       c.ID,
		IDMascota:        c.PatientID,
		NombrePaciente:   c.PatientName,
		DetallesPaciente: c.Details,
		Motivo:           c.Reason,
		Fecha:            c.Date.Format("2006-01-02"),
		Diagnostico:      c.Diagnosis,
		NombreMascota:    c.OwnerPetName,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Datos inválidos")
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "ID ya existe")
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
