package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

type server struct {
	logger *slog.Logger

	tokens *TokenIssuer

	appRepository  domain.ApplicationRepository
	userRepository domain.UserRepository

	validate *validator.Validate
}

func NewServer(logger *slog.Logger, tokens *TokenIssuer, appRepo domain.ApplicationRepository, userRepo domain.UserRepository) *server {
	return &server{
		logger:         logger,
		tokens:         tokens,
		appRepository:  appRepo,
		userRepository: userRepo,
		validate:       validator.New(),
	}
}

func (s *server) Server(port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(countRequests)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"message": "Welcome to Dev-Hub API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Post("/auth/login", s.handleLogin)

	r.Route("/apps", func(r chi.Router) {
		r.Get("/", s.handleListApps)

		r.Group(func(r chi.Router) {
			r.Use(s.bearerTokenVerifier)
			r.Use(s.adminOnly)
			r.Post("/", s.handleCreateApp)
			r.Put("/{app-id}", s.handleUpdateApp)
			r.Delete("/{app-id}", s.handleDeleteApp)
		})
	})
	return r
}
