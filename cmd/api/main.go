// @title Registro Veterinaria API
// @version 1.0
// @description API REST del registro de la clínica veterinaria: pacientes,
// @description consultas y aseo, sobre almacenamiento relacional o documental.
// @BasePath /
package main

import (
	"net/http"
	"os"
	"time"

	"registro-veterinaria/internal/config"
	"registro-veterinaria/internal/platform/logger"
	"registro-veterinaria/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; el entorno del proceso manda.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuración inválida", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Config: cfg,
		Log:    log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":    srv.Addr,
		"backend": string(cfg.Backend),
	})

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
