package router

import (
	"encoding/json"
	"net/http"
	"strings"

	_ "people-pets-api/docs"
	"people-pets-api/internal/adapters/storage"
	"people-pets-api/internal/domain/people"
	"people-pets-api/internal/domain/pets"
	"people-pets-api/internal/middleware"
	"people-pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa el store en memoria.
	Store *storage.Store

	// Opcional: nil => no loguea.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.AppendSlash(r))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		if allowed := middleware.AllowedMethods(r, req.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", indexHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	peopleSvc := people.NewService(store.People, store.Pets)
	petsSvc := pets.NewService(store.Pets, store.People)

	// Rutas por módulo
	people.RegisterRoutes(r, peopleSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}

type indexResponse struct {
	Endpoints []string `json:"endpoints"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// indexHandler godoc
// @Summary Índice
// @Description Lista las colecciones disponibles.
// @Tags index
// @Produce json
// @Success 200 {object} indexResponse
// @Router / [get]
func indexHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{Endpoints: []string{"people/", "pets/"}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
