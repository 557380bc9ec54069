package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/niladhikari/house-hunter-server/internal/listings"
	"github.com/niladhikari/house-hunter-server/internal/token"
	"github.com/niladhikari/house-hunter-server/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	TokenHandler    *token.Handler
	UsersHandler    *users.Handler
	ListingsHandler *listings.Handler
}

// NewRouter constructs the chi.Router for the house hunter API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("House Hunter is running..."))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/jwt", params.TokenHandler.Issue)
	r.Route("/users", params.UsersHandler.MountRoutes)
	r.Route("/houses", params.ListingsHandler.MountRoutes)
	r.Get("/menu/{id}", params.ListingsHandler.GetByID)

	return r
}
