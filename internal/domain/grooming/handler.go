package grooming

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
	r.Route("/aseo", func(gr chi.Router) {
		gr.Post("/", upsertGroomingHandler(svc))
		gr.Get("/", findGroomingHandler(svc))
	})
}

type upsertGroomingRequest struct {
	IDAseo      string `json:"idAseo"`
	IDMascota   string `json:"idMascota"`
	TipoBanio   string `json:"tipoBanio"`
	EsAgresivo  bool   `json:"esAgresivo"`
	FechaBanio  string `json:"fechaBanio"` // YYYY-MM-DD
	Propietario string `json:"propietario"`
}

type Response struct {
	IDAseo      string    `json:"idAseo"`
	IDMascota   string    `json:"idMascota"`
	TipoBanio   string    `json:"tipoBanio"`
	EsAgresivo  bool      `json:"esAgresivo"`
	FechaBanio  string    `json:"fechaBanio"`
	Propietario string    `json:"propietario"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func upsertGroomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertGroomingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		fecha, err := time.Parse("2006-01-02", strings.TrimSpace(req.FechaBanio))
		if err != nil {
			writeError(w, http.StatusBadRequest, "fechaBanio debe ser YYYY-MM-DD")
			return
		}

		_, err = svc.Upsert(r.Context(), UpsertInput{
			ID:         req.IDAseo,
			PatientID:  req.IDMascota,
			BathType:   req.TipoBanio,
			Aggressive: req.EsAgresivo,
			Date:       fecha,
			OwnerName:  req.Propietario,
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Aseo registrado",
		})
	}
}

func findGroomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Find(r.Context(), Filter{
			ID:        r.URL.Query().Get("idAseo"),
			PatientID: r.URL.Query().Get("idMascota"),
		})
		if err != nil {
			writeStorageError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, g := range items {
			out = append(out, ToResponse(g))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func ToResponse(g Grooming) Response {
	return Response{
		IDAseo:      g.ID,
		IDMascota:   g.PatientID,
		TipoBanio:   g.BathType,
		EsAgresivo:  g.Aggressive,
		FechaBanio:  g.Date.Format("2006-01-02"),
		Propietario: g.OwnerName,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
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
