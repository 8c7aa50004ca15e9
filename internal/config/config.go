package config

import (
	"fmt"
	"os"
	"strings"
)

// Backend identifica el almacenamiento activo del proceso. Se elige una sola
// vez al arranque y se mantiene durante toda la vida del proceso.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
	BackendMemory   Backend = "memory"
)

// Config agrupa toda la configuración del servicio, leída de variables de
// entorno (con .env opcional cargado desde main).
type Config struct {
	Port    string
	Backend Backend

	// Postgres
	PostgresDSN string

	// Mongo
	MongoURI string
	MongoDB  string

	// Credenciales del login (comparación directa, no es un mecanismo de
	// seguridad real)
	AdminUser     string
	AdminPassword string
}

// Load lee la configuración desde el entorno aplicando defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3002"),
		Backend:       Backend(strings.ToLower(getEnv("STORAGE_BACKEND", "memory"))),
		PostgresDSN:   getEnv("DB_DSN", ""),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "registro_veterinaria"),
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	switch cfg.Backend {
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("config: STORAGE_BACKEND=postgres requiere DB_DSN")
		}
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("config: STORAGE_BACKEND=mongo requiere MONGO_URI")
		}
	case BackendMemory:
		// sin requisitos extra
	default:
		return nil, fmt.Errorf("config: STORAGE_BACKEND desconocido %q", cfg.Backend)
	}

	return cfg, nil
}

// getEnv lee una variable de entorno con valor por defecto.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
