package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// fakeStore is an in-memory BookStore mirroring the table semantics the
// real client gets from PostgREST: rows keyed by uuid, get scoped to the
// owning user, list newest first.
type fakeStore struct {
	books map[string]domain.Book
	clock time.Time

	listErr   error
	insertErr error
	updateErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		books: make(map[string]domain.Book),
		clock: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake creation clock so ordering is deterministic.
func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeStore) InsertBook(_ context.Context, rec supabase.BookRecord) (domain.Book, error) {
	if f.insertErr != nil {
		return domain.Book{}, f.insertErr
	}
	now := f.tick()
	book := domain.Book{
		ID:          uuid.NewString(),
		UserID:      rec.UserID,
		Title:       rec.Title,
		Author:      rec.Author,
		Status:      rec.Status,
		Pages:       rec.Pages,
		CurrentPage: &rec.CurrentPage,
		Rating:      rec.Rating,
		Notes:       rec.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.books[book.ID] = book
	return book, nil
}

func (f *fakeStore) ListBooks(_ context.Context, userID string, status string) ([]domain.Book, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Book
	for _, b := range f.books {
		if b.UserID != userID {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) GetBook(_ context.Context, id, userID string) (domain.Book, error) {
	book, ok := f.books[id]
	if !ok || book.UserID != userID {
		return domain.Book{}, supabase.ErrNotFound
	}
	return book, nil
}

func (f *fakeStore) UpdateBook(_ context.Context, id string, patch map[string]any) (domain.Book, error) {
	if f.updateErr != nil {
		return domain.Book{}, f.updateErr
	}
	book, ok := f.books[id]
	if !ok {
		return domain.Book{}, supabase.ErrNotFound
	}
	for col, val := range patch {
		switch col {
		case "title":
			book.Title = val.(string)
		case "author":
			book.Author = val.(string)
		case "status":
			book.Status = val.(domain.Status)
		case "pages":
			v := val.(int)
			book.Pages = &v
		case "current_page":
			v := val.(int)
			book.CurrentPage = &v
		case "rating":
			v := val.(int)
			book.Rating = &v
		case "notes":
			v := val.(string)
			book.Notes = &v
		}
	}
	book.UpdatedAt = f.tick()
	f.books[id] = book
	return book, nil
}

func (f *fakeStore) DeleteBook(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.books, id)
	return nil
}

// fakeIdentity scripts the identity gateway.
type fakeIdentity struct {
	signUpSession domain.Session
	signUpErr     error
	signInSession domain.Session
	signInErr     error
	user          domain.User
	userErr       error
}

func (f *fakeIdentity) SignUp(context.Context, string, string, string) (domain.Session, error) {
	return f.signUpSession, f.signUpErr
}

func (f *fakeIdentity) SignIn(context.Context, string, string) (domain.Session, error) {
	return f.signInSession, f.signInErr
}

func (f *fakeIdentity) UserFromToken(context.Context, string) (domain.User, error) {
	return f.user, f.userErr
}

// fakeGenerator records whether the model was invoked.
type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
