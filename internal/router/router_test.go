package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"registro-veterinaria/internal/config"
	"registro-veterinaria/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := router.NewRouter(router.Options{
		Config: &config.Config{
			Backend:       config.BackendMemory,
			AdminUser:     "admin",
			AdminPassword: "admin123",
		},
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PacientesYConsultas(t *testing.T) {
	ts := newTestServer(t)

	// 1) Registrar paciente PET001
	{
		st, body := doReq(t, ts.URL, "POST", "/pacientes", map[string]any{
			"id":          "PET001",
			"nombre":      "Luke",
			"especie":     "Gato",
			"raza":        "De colores",
			"nacimiento":  "2024-10-24",
			"propietario": "Alex",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create patient, got %d body=%s", st, string(body))
		}
	}

	// 2) Buscar por id exacto => exactamente ese registro
	{
		st, body := doReq(t, ts.URL, "GET", "/pacientes?id=PET001", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}

		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 patient, got %d body=%s", len(items), string(body))
		}
		p := items[0]
		if p["nombre"] != "Luke" || p["especie"] != "Gato" || p["raza"] != "De colores" {
			t.Fatalf("unexpected patient: %v", p)
		}
		if p["nacimiento"] != "2024-10-24" {
			t.Fatalf("expected nacimiento 2024-10-24, got %v", p["nacimiento"])
		}
		if p["propietario"] != "Alex" {
			t.Fatalf("expected propietario Alex, got %v", p["propietario"])
		}
	}

	// 3) Substring case-insensitive: "luk" matchea "Luke"
	{
		st, body := doReq(t, ts.URL, "GET", "/pacientes?nombre=luk", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 || items[0]["id"] != "PET001" {
			t.Fatalf("expected PET001 match for 'luk', body=%s", string(body))
		}
	}

	// 4) Registrar consulta C1 referenciando PET001
	{
		st, body := doReq(t, ts.URL, "POST", "/consultas", map[string]any{
			"idConsulta":  "C1",
			"idMascota":   "PET001",
			"motivo":      "checkup",
			"fecha":       "2025-01-01",
			"diagnostico": "healthy",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create consultation, got %d body=%s", st, string(body))
		}
	}

	// 5) La vista join trae el nombre vivo del paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/consultas?idMascota=PET001", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 consultation, got %d body=%s", len(items), string(body))
		}
		if items[0]["NombreMascota"] != "Luke" {
			t.Fatalf("expected NombreMascota=Luke, got %v", items[0]["NombreMascota"])
		}
		if items[0]["detallesPaciente"] != "" {
			t.Fatalf("expected detallesPaciente default '', got %v", items[0]["detallesPaciente"])
		}
	}

	// 6) Eliminar el paciente => NombreMascota pasa a null, snapshot se conserva
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pacientes/PET001", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/consultas?idMascota=PET001", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected dangling consultation to survive, body=%s", string(body))
		}
		if items[0]["NombreMascota"] != nil {
			t.Fatalf("expected NombreMascota=null after delete, got %v", items[0]["NombreMascota"])
		}
	}

	// 7) Borrar dos veces: la segunda es 404
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pacientes/PET001", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d body=%s", st, string(body))
		}
		var resp map[string]any
		mustUnmarshal(t, body, &resp)
		if resp["success"] != false {
			t.Fatalf("expected success=false, got %v", resp)
		}
	}
}

func TestHTTP_Upsert_ActualizaEnLugar(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]any{
		"id":          "PET001",
		"nombre":      "Luke",
		"especie":     "Gato",
		"propietario": "Alex",
	}
	if st, body := doReq(t, ts.URL, "POST", "/pacientes", payload); st != http.StatusOK {
		t.Fatalf("expected 200 first register, got %d body=%s", st, string(body))
	}

	// Re-registrar el mismo id con otro nombre: un solo registro, actualizado.
	payload["nombre"] = "Lucas"
	if st, body := doReq(t, ts.URL, "POST", "/pacientes", payload); st != http.StatusOK {
		t.Fatalf("expected 200 re-register, got %d body=%s", st, string(body))
	}

	st, body := doReq(t, ts.URL, "GET", "/pacientes", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var items []map[string]any
	mustUnmarshal(t, body, &items)
	if len(items) != 1 {
		t.Fatalf("expected 1 patient total after upsert, got %d", len(items))
	}
	if items[0]["nombre"] != "Lucas" {
		t.Fatalf("expected updated name Lucas, got %v", items[0]["nombre"])
	}
	// Sin fecha: nacimiento viaja como null, no como error.
	if items[0]["nacimiento"] != nil {
		t.Fatalf("expected nacimiento null, got %v", items[0]["nacimiento"])
	}
}

func TestHTTP_Validacion(t *testing.T) {
	ts := newTestServer(t)

	// id faltante
	{
		st, _ := doReq(t, ts.URL, "POST", "/pacientes", map[string]any{"nombre": "Luke"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing id, got %d", st)
		}
	}
	// fecha malformada
	{
		st, _ := doReq(t, ts.URL, "POST", "/pacientes", map[string]any{
			"id": "PET009", "nombre": "Max", "nacimiento": "24/10/2024",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad date, got %d", st)
		}
	}
	// consulta sin motivo
	{
		st, _ := doReq(t, ts.URL, "POST", "/consultas", map[string]any{
			"idConsulta": "C9", "idMascota": "PET009", "fecha": "2025-01-01", "diagnostico": "x",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing motivo, got %d", st)
		}
	}
}

func TestHTTP_Test_Login(t *testing.T) {
	ts := newTestServer(t)

	// /test con store vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/test", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp map[string]any
		mustUnmarshal(t, body, &resp)
		if resp["success"] != true || resp["totalPacientes"] != float64(0) {
			t.Fatalf("unexpected /test response: %v", resp)
		}
	}

	// login correcto emite token
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "admin", "password": "admin123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp map[string]any
		mustUnmarshal(t, body, &resp)
		if resp["success"] != true {
			t.Fatalf("expected success, got %v", resp)
		}
		if tok, _ := resp["token"].(string); tok == "" {
			t.Fatalf("expected non-empty token, got %v", resp)
		}
	}

	// credenciales incorrectas
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "admin", "password": "nope",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp map[string]any
		mustUnmarshal(t, body, &resp)
		if resp["success"] != false || resp["message"] != "Credenciales incorrectas" {
			t.Fatalf("unexpected login failure response: %v", resp)
		}
	}
}

func TestHTTP_Aseo_Historial(t *testing.T) {
	ts := newTestServer(t)

	if st, body := doReq(t, ts.URL, "POST", "/pacientes", map[string]any{
		"id": "PET002", "nombre": "Güero", "especie": "Gato", "raza": "Naranja",
		"nacimiento": "2024-05-23", "propietario": "Fresy",
	}); st != http.StatusOK {
		t.Fatalf("expected 200 create patient, got %d body=%s", st, string(body))
	}

	if st, body := doReq(t, ts.URL, "POST", "/consultas", map[string]any{
		"idConsulta": "C2", "idMascota": "PET002", "motivo": "vacuna",
		"fecha": "2025-02-01", "diagnostico": "sano",
	}); st != http.StatusOK {
		t.Fatalf("expected 200 create consultation, got %d body=%s", st, string(body))
	}

	if st, body := doReq(t, ts.URL, "POST", "/aseo", map[string]any{
		"idAseo": "A1", "idMascota": "PET002", "tipoBanio": "medicado",
		"esAgresivo": false, "fechaBanio": "2025-02-02", "propietario": "Fresy",
	}); st != http.StatusOK {
		t.Fatalf("expected 200 create grooming, got %d body=%s", st, string(body))
	}

	// Buscar aseo por idMascota
	{
		st, body := doReq(t, ts.URL, "GET", "/aseo?idMascota=PET002", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 || items[0]["idAseo"] != "A1" {
			t.Fatalf("unexpected grooming result: %s", string(body))
		}
	}

	// Historial combinado
	{
		st, body := doReq(t, ts.URL, "GET", "/historial/PET002", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 historial, got %d body=%s", st, string(body))
		}
		var resp struct {
			Paciente  map[string]any   `json:"paciente"`
			Consultas []map[string]any `json:"consultas"`
			Aseos     []map[string]any `json:"aseos"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Paciente["nombre"] != "Güero" {
			t.Fatalf("unexpected paciente in historial: %v", resp.Paciente)
		}
		if len(resp.Consultas) != 1 || len(resp.Aseos) != 1 {
			t.Fatalf("expected 1 consulta and 1 aseo, got %d/%d", len(resp.Consultas), len(resp.Aseos))
		}
	}

	// Historial de mascota desconocida => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/historial/NOPE", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown historial, got %d", st)
		}
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal %q: %v", string(b), err)
	}
}
