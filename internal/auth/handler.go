// Package auth implementa el login del registro: una comparación directa de
// credenciales configuradas por entorno. No es un mecanismo de seguridad; el
// token emitido solo le sirve al frontend para marcar la sesión.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Credentials struct {
	User     string
	Password string
}

func RegisterRoutes(r chi.Router, creds Credentials) {
	r.Post("/login", loginHandler(creds))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler godoc
// @Summary Login
// @Description Valida las credenciales del administrador y emite un token de sesión opaco.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} map[string]any
// @Router /login [post]
func loginHandler(creds Credentials) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "Datos inválidos",
			})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(creds.User)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(creds.Password)) == 1
		if !userOK || !passOK {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": false,
				"message": "Credenciales incorrectas",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   uuid.NewString(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
