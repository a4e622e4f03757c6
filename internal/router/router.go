package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "pet-behavior-demo/internal/adapters/storage/memory"
	pg "pet-behavior-demo/internal/adapters/storage/postgres"
	_ "pet-behavior-demo/internal/docs"
	"pet-behavior-demo/internal/domain/animals"
	"pet-behavior-demo/internal/middleware"
	"pet-behavior-demo/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => no loguea

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Si no te pasan DB explícita, intenta por env (para dev)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, using in-memory repo", map[string]any{"err": err})
			} else {
				db = opened
			}
		}
	}

	var animalRepo animals.Repository
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			log.Error("ensure schema failed", map[string]any{"err": err})
		}
		animalRepo = pg.NewAnimalsRepo(db)
	} else {
		animalRepo = mem.NewAnimalRepo()
	}

	animalsSvc := animals.NewService(animalRepo)
	animals.RegisterRoutes(r, animalsSvc)

	return r
}
