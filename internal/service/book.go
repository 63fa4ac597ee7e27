package service

import (
	"context"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// BookStore is the subset of the book table client used by BookService.
// Implemented by *supabase.Client.
type BookStore interface {
	InsertBook(ctx context.Context, rec supabase.BookRecord) (domain.Book, error)
	ListBooks(ctx context.Context, userID string, status string) ([]domain.Book, error)
	GetBook(ctx context.Context, id, userID string) (domain.Book, error)
	UpdateBook(ctx context.Context, id string, patch map[string]any) (domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// CreateBookParams carries the client-supplied fields for a new book.
// The owner is never taken from the client.
type CreateBookParams struct {
	Title       string
	Author      string
	Status      domain.Status
	Pages       *int
	CurrentPage *int
	Rating      *int
	Notes       *string
}

// UpdateBookParams carries a partial update: nil fields are left untouched.
type UpdateBookParams struct {
	Title       *string
	Author      *string
	Status      *domain.Status
	Pages       *int
	CurrentPage *int
	Rating      *int
	Notes       *string
}

// patch renders the set fields as a column patch map.
func (p UpdateBookParams) patch() map[string]any {
	patch := make(map[string]any)
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Author != nil {
		patch["author"] = *p.Author
	}
	if p.Status != nil {
		patch["status"] = *p.Status
	}
	if p.Pages != nil {
		patch["pages"] = *p.Pages
	}
	if p.CurrentPage != nil {
		patch["current_page"] = *p.CurrentPage
	}
	if p.Rating != nil {
		patch["rating"] = *p.Rating
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	return patch
}

// BookService provides per-user CRUD and statistics over the book store.
// Every operation is scoped to the calling user's id; ownership misses are
// indistinguishable from nonexistent rows.
type BookService struct {
	store BookStore
	log   *logger.Logger
}

// NewBookService creates a book service.
func NewBookService(store BookStore, log *logger.Logger) *BookService {
	return &BookService{
		store: store,
		log:   log,
	}
}

// Create inserts a new book owned by userID. Status defaults to
// want_to_read and current_page to 0 when absent.
func (s *BookService) Create(ctx context.Context, userID string, params CreateBookParams) (domain.Book, error) {
	status := params.Status
	if status == "" {
		status = domain.StatusWantToRead
	}
	currentPage := 0
	if params.CurrentPage != nil {
		currentPage = *params.CurrentPage
	}

	book, err := s.store.InsertBook(ctx, supabase.BookRecord{
		UserID:      userID,
		Title:       params.Title,
		Author:      params.Author,
		Status:      status,
		Pages:       params.Pages,
		CurrentPage: currentPage,
		Rating:      params.Rating,
		Notes:       params.Notes,
	})
	if err != nil {
		s.log.Error("Failed to create book", "error", err, "user_id", userID)
		return domain.Book{}, apperrors.BadRequest(err.Error())
	}
	return book, nil
}

// List returns the caller's books newest first, optionally filtered by
// exact status match.
func (s *BookService) List(ctx context.Context, userID string, statusFilter string) ([]domain.Book, error) {
	books, err := s.store.ListBooks(ctx, userID, statusFilter)
	if err != nil {
		s.log.Error("Failed to list books", "error", err, "user_id", userID)
		return nil, apperrors.BadRequest(err.Error())
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

// Get returns a single book owned by userID.
func (s *BookService) Get(ctx context.Context, userID, id string) (domain.Book, error) {
	book, err := s.store.GetBook(ctx, id, userID)
	if err != nil {
		if apperrors.Is(err, supabase.ErrNotFound) {
			return domain.Book{}, apperrors.NotFound("Book not found")
		}
		return domain.Book{}, apperrors.BadRequest(err.Error())
	}
	return book, nil
}

// Update applies a partial update to a book owned by userID. Fields not
// present in params keep their prior values.
func (s *BookService) Update(ctx context.Context, userID, id string, params UpdateBookParams) (domain.Book, error) {
	// Ownership check before touching the row.
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Book{}, err
	}

	patch := params.patch()
	if len(patch) == 0 {
		return existing, nil
	}

	book, err := s.store.UpdateBook(ctx, id, patch)
	if err != nil {
		if apperrors.Is(err, supabase.ErrNotFound) {
			return domain.Book{}, apperrors.NotFound("Book not found")
		}
		s.log.Error("Failed to update book", "error", err, "id", id, "user_id", userID)
		return domain.Book{}, apperrors.BadRequest(err.Error())
	}
	return book, nil
}

// Delete removes a book owned by userID.
func (s *BookService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := s.store.DeleteBook(ctx, id); err != nil {
		s.log.Error("Failed to delete book", "error", err, "id", id, "user_id", userID)
		return apperrors.BadRequest(err.Error())
	}
	return nil
}

// Stats aggregates reading statistics over all of the caller's books.
func (s *BookService) Stats(ctx context.Context, userID string) (domain.Stats, error) {
	books, err := s.store.ListBooks(ctx, userID, "")
	if err != nil {
		s.log.Error("Failed to load books for stats", "error", err, "user_id", userID)
		return domain.Stats{}, apperrors.BadRequest(err.Error())
	}
	return domain.Summarize(books), nil
}
