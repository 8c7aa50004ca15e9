package router

import (
	"net/http"
	"time"

	mem "registro-veterinaria/internal/adapters/storage/memory"
	mg "registro-veterinaria/internal/adapters/storage/mongo"
	pg "registro-veterinaria/internal/adapters/storage/postgres"
	"registro-veterinaria/internal/auth"
	"registro-veterinaria/internal/config"
	"registro-veterinaria/internal/domain/consultations"
	"registro-veterinaria/internal/domain/grooming"
	"registro-veterinaria/internal/domain/history"
	"registro-veterinaria/internal/domain/patients"
	"registro-veterinaria/internal/platform/logger"

	_ "registro-veterinaria/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Log    *logger.Logger
}

// NewRouter arma el router y elige el backend de almacenamiento una sola vez,
// según configuración. Los repos comparten el handle perezoso de su adaptador
// durante toda la vida del proceso.
func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{Level: logger.Info})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		patientsRepo      patients.Repository
		consultationsRepo consultations.Repository
		groomingRepo      grooming.Repository
	)

	switch cfg.Backend {
	case config.BackendPostgres:
		pool := pg.NewDB(cfg.PostgresDSN)
		patientsRepo = pg.NewPatientsRepo(pool)
		consultationsRepo = pg.NewConsultationsRepo(pool)
		groomingRepo = pg.NewGroomingRepo(pool)
	case config.BackendMongo:
		client := mg.NewClient(cfg.MongoURI, cfg.MongoDB)
		patientsRepo = mg.NewPatientsRepo(client)
		consultationsRepo = mg.NewConsultationsRepo(client)
		groomingRepo = mg.NewGroomingRepo(client)
	default:
		store := mem.NewStore()
		patientsRepo = store.Patients()
		consultationsRepo = store.Consultations()
		groomingRepo = store.Grooming()
	}

	log.Info("storage backend selected", map[string]any{"backend": string(cfg.Backend)})

	patientsSvc := patients.NewService(patientsRepo)
	consultationsSvc := consultations.NewService(consultationsRepo)
	groomingSvc := grooming.NewService(groomingRepo)

	auth.RegisterRoutes(r, auth.Credentials{
		User:     cfg.AdminUser,
		Password: cfg.AdminPassword,
	})
	patients.RegisterRoutes(r, patientsSvc)
	consultations.RegisterRoutes(r, consultationsSvc)
	grooming.RegisterRoutes(r, groomingSvc)
	history.RegisterRoutes(r, patientsSvc, consultationsSvc, groomingSvc)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// requestLogger registra cada request con método, path, status y duración.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("request", map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start).String(),
				"request_id": chimw.GetReqID(r.Context()),
			})
		})
	}
}
