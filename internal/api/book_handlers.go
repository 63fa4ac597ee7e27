package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	"github.com/booktrackapp/booktrack-server/internal/http/response"
	"github.com/booktrackapp/booktrack-server/internal/service"
)

// CreateBookRequest is the request body for creating a book. Any
// client-supplied user_id is ignored; ownership always comes from the
// authenticated caller.
type CreateBookRequest struct {
	Title       string        `json:"title" validate:"required,min=1,max=500"`
	Author      string        `json:"author" validate:"required,min=1,max=500"`
	Status      domain.Status `json:"status" validate:"omitempty,min=1,max=50"`
	Pages       *int          `json:"pages" validate:"omitempty,gte=0"`
	CurrentPage *int          `json:"current_page" validate:"omitempty,gte=0"`
	Rating      *int          `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes       *string       `json:"notes"`
}

// UpdateBookRequest is the request body for a partial book update. Absent
// fields are left untouched.
type UpdateBookRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=500"`
	Author      *string        `json:"author" validate:"omitempty,min=1,max=500"`
	Status      *domain.Status `json:"status" validate:"omitempty,min=1,max=50"`
	Pages       *int           `json:"pages" validate:"omitempty,gte=0"`
	CurrentPage *int           `json:"current_page" validate:"omitempty,gte=0"`
	Rating      *int           `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes       *string        `json:"notes"`
}

// handleCreateBook inserts a new book owned by the caller.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user := currentUser(r.Context())
	book, err := s.books.Create(r.Context(), user.ID, service.CreateBookParams{
		Title:       req.Title,
		Author:      req.Author,
		Status:      req.Status,
		Pages:       req.Pages,
		CurrentPage: req.CurrentPage,
		Rating:      req.Rating,
		Notes:       req.Notes,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, book, s.logger)
}

// handleListBooks returns the caller's books, newest first, optionally
// filtered by exact status.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	statusFilter := r.URL.Query().Get("status_filter")

	books, err := s.books.List(r.Context(), user.ID, statusFilter)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, books, s.logger)
}

// handleGetBook returns a single book owned by the caller.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	id := chi.URLParam(r, "id")

	book, err := s.books.Get(r.Context(), user.ID, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleUpdateBook applies a partial update to a book owned by the caller.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user := currentUser(r.Context())
	id := chi.URLParam(r, "id")

	book, err := s.books.Update(r.Context(), user.ID, id, service.UpdateBookParams{
		Title:       req.Title,
		Author:      req.Author,
		Status:      req.Status,
		Pages:       req.Pages,
		CurrentPage: req.CurrentPage,
		Rating:      req.Rating,
		Notes:       req.Notes,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleDeleteBook removes a book owned by the caller.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.books.Delete(r.Context(), user.ID, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleGetStats returns aggregate reading statistics for the caller.
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	stats, err := s.books.Stats(r.Context(), user.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, stats, s.logger)
}
