package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/booktrackapp/booktrack-server/internal/domain"
)

const booksPath = restBasePath + "/books"

// BookRecord is the insert payload for the books table. The id and both
// timestamps are assigned server-side.
type BookRecord struct {
	UserID      string        `json:"user_id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Status      domain.Status `json:"status"`
	Pages       *int          `json:"pages"`
	CurrentPage int           `json:"current_page"`
	Rating      *int          `json:"rating"`
	Notes       *string       `json:"notes"`
}

// InsertBook inserts a new book row and returns the persisted record.
func (c *Client) InsertBook(ctx context.Context, rec BookRecord) (domain.Book, error) {
	body, err := c.doRequest(ctx, http.MethodPost, booksPath, nil, requestOptions{
		payload: rec,
		prefer:  "return=representation",
	})
	if err != nil {
		return domain.Book{}, wrapError("insertBook", err)
	}

	book, err := singleBook(body)
	if err != nil {
		return domain.Book{}, wrapError("insertBook", err)
	}
	return book, nil
}

// ListBooks returns all books owned by userID, newest first, optionally
// filtered by exact status match.
func (c *Client) ListBooks(ctx context.Context, userID string, status string) ([]domain.Book, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+userID)
	if status != "" {
		query.Set("status", "eq."+status)
	}
	query.Set("order", "created_at.desc")

	body, err := c.doRequest(ctx, http.MethodGet, booksPath, query, requestOptions{})
	if err != nil {
		return nil, wrapError("listBooks", err)
	}

	var books []domain.Book
	if err := json.Unmarshal(body, &books); err != nil {
		return nil, wrapError("listBooks", fmt.Errorf("parse response: %w", err))
	}
	return books, nil
}

// GetBook fetches a single book by id, scoped to its owner. A row that
// exists under a different owner is indistinguishable from a missing row:
// both return ErrNotFound.
func (c *Client) GetBook(ctx context.Context, id, userID string) (domain.Book, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)
	query.Set("user_id", "eq."+userID)

	body, err := c.doRequest(ctx, http.MethodGet, booksPath, query, requestOptions{})
	if err != nil {
		return domain.Book{}, wrapError("getBook", err)
	}

	book, err := singleBook(body)
	if err != nil {
		return domain.Book{}, wrapError("getBook", err)
	}
	return book, nil
}

// UpdateBook applies a partial update to a book row. Only the keys present
// in patch are changed; updated_at is advanced by the store.
func (c *Client) UpdateBook(ctx context.Context, id string, patch map[string]any) (domain.Book, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	body, err := c.doRequest(ctx, http.MethodPatch, booksPath, query, requestOptions{
		payload: patch,
		prefer:  "return=representation",
	})
	if err != nil {
		return domain.Book{}, wrapError("updateBook", err)
	}

	book, err := singleBook(body)
	if err != nil {
		return domain.Book{}, wrapError("updateBook", err)
	}
	return book, nil
}

// DeleteBook removes a book row by id.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)

	if _, err := c.doRequest(ctx, http.MethodDelete, booksPath, query, requestOptions{}); err != nil {
		return wrapError("deleteBook", err)
	}
	return nil
}

// singleBook parses a PostgREST row-set response expected to hold exactly
// one row. An empty set maps to ErrNotFound.
func singleBook(body []byte) (domain.Book, error) {
	var books []domain.Book
	if err := json.Unmarshal(body, &books); err != nil {
		return domain.Book{}, fmt.Errorf("parse response: %w", err)
	}
	if len(books) == 0 {
		return domain.Book{}, ErrNotFound
	}
	return books[0], nil
}
