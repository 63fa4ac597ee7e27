// Package api provides the HTTP API server and handlers for the BookTrack
// application.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	"github.com/booktrackapp/booktrack-server/internal/http/response"
	"github.com/booktrackapp/booktrack-server/internal/service"
	"github.com/booktrackapp/booktrack-server/internal/validation"
)

// AuthService is the authentication surface the handlers depend on.
// Implemented by *service.AuthService.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (domain.Session, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	VerifyToken(ctx context.Context, token string) (domain.User, error)
}

// BookService is the book CRUD/statistics surface the handlers depend on.
// Implemented by *service.BookService.
type BookService interface {
	Create(ctx context.Context, userID string, params service.CreateBookParams) (domain.Book, error)
	List(ctx context.Context, userID string, statusFilter string) ([]domain.Book, error)
	Get(ctx context.Context, userID, id string) (domain.Book, error)
	Update(ctx context.Context, userID, id string, params service.UpdateBookParams) (domain.Book, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string) (domain.Stats, error)
}

// RecommendationService is the recommendation surface the handlers depend
// on. Implemented by *service.RecommendationService.
type RecommendationService interface {
	Enabled() bool
	Recommendations(ctx context.Context, user domain.User) (domain.RecommendationSet, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	auth      AuthService
	books     BookService
	recs      RecommendationService
	validator *validation.Validator
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(auth AuthService, books BookService, recs RecommendationService, logger *slog.Logger) *Server {
	s := &Server{
		auth:      auth,
		books:     books,
		recs:      recs,
		validator: validation.New(),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Service banner.
	s.router.Get("/", s.handleRoot)

	s.router.Route("/api", func(r chi.Router) {
		// Auth endpoints (signup/login public, me protected).
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.handleSignup)
			r.Post("/login", s.handleLogin)
			r.With(s.requireAuth).Get("/me", s.handleMe)
		})

		// Books (all protected).
		r.Route("/books", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateBook)
			r.Get("/", s.handleListBooks)
			r.Get("/{id}", s.handleGetBook)
			r.Put("/{id}", s.handleUpdateBook)
			r.Delete("/{id}", s.handleDeleteBook)
		})

		r.With(s.requireAuth).Get("/stats", s.handleGetStats)
		r.With(s.requireAuth).Get("/recommendations", s.handleGetRecommendations)
	})
}

// handleRoot returns the service banner.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]any{
		"message":    serviceName,
		"version":    serviceVersion,
		"ai_enabled": s.recs.Enabled(),
	}, s.logger)
}
