package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
)

func TestBookCreate_Defaults(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())

	book, err := svc.Create(context.Background(), "u1", CreateBookParams{
		Title:  "Dune",
		Author: "Frank Herbert",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", book.UserID)
	assert.Equal(t, domain.StatusWantToRead, book.Status)
	require.NotNil(t, book.CurrentPage)
	assert.Equal(t, 0, *book.CurrentPage)
	assert.NotEmpty(t, book.ID)
}

func TestBookCreate_OwnerComesFromCaller(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())

	book, err := svc.Create(context.Background(), "u1", CreateBookParams{
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: domain.StatusReading,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", book.UserID)
	assert.Equal(t, domain.StatusReading, book.Status)
}

func TestBookCreate_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("column mismatch")
	svc := NewBookService(store, discardLogger())

	_, err := svc.Create(context.Background(), "u1", CreateBookParams{Title: "Dune", Author: "Frank Herbert"})

	assert.Equal(t, apperrors.CodeBadRequest, codeOf(t, err))
}

func TestBookList_NewestFirstAndFiltered(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	first, _ := svc.Create(ctx, "u1", CreateBookParams{Title: "A", Author: "X", Status: domain.StatusReading})
	second, _ := svc.Create(ctx, "u1", CreateBookParams{Title: "B", Author: "Y", Status: domain.StatusCompleted})
	third, _ := svc.Create(ctx, "u1", CreateBookParams{Title: "C", Author: "Z", Status: domain.StatusReading})

	all, err := svc.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	reading, err := svc.List(ctx, "u1", "reading")
	require.NoError(t, err)
	require.Len(t, reading, 2)
	assert.Equal(t, third.ID, reading[0].ID)
}

func TestBookList_EmptyIsNotNil(t *testing.T) {
	svc := NewBookService(newFakeStore(), discardLogger())

	books, err := svc.List(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookGet_NotFound(t *testing.T) {
	svc := NewBookService(newFakeStore(), discardLogger())

	_, err := svc.Get(context.Background(), "u1", "missing")

	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))
}

func TestBookOwnership_IsolatedAcrossUsers(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookParams{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	// Another user's reads, updates, and deletes all see a missing row.
	_, err = svc.Get(ctx, "intruder", book.ID)
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))

	_, err = svc.Update(ctx, "intruder", book.ID, UpdateBookParams{Rating: intPtr(1)})
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))

	err = svc.Delete(ctx, "intruder", book.ID)
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))

	// The owner still sees the untouched book.
	got, err := svc.Get(ctx, "owner", book.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)
}

func TestBookUpdate_PartialLeavesOtherFields(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	book, err := svc.Create(ctx, "u1", CreateBookParams{
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: domain.StatusReading,
		Pages:  intPtr(412),
	})
	require.NoError(t, err)

	status := domain.StatusCompleted
	updated, err := svc.Update(ctx, "u1", book.ID, UpdateBookParams{
		Status: &status,
		Rating: intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, "Frank Herbert", updated.Author)
	require.NotNil(t, updated.Pages)
	assert.Equal(t, 412, *updated.Pages)
}

func TestBookUpdate_EmptyPatchReturnsExisting(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	book, err := svc.Create(ctx, "u1", CreateBookParams{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", book.ID, UpdateBookParams{})
	require.NoError(t, err)
	assert.Equal(t, book.UpdatedAt, updated.UpdatedAt)
}

func TestBookUpdate_NotesAndTitle(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	book, err := svc.Create(ctx, "u1", CreateBookParams{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", book.ID, UpdateBookParams{
		Title: strPtr("Dune Messiah"),
		Notes: strPtr("sequel"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "sequel", *updated.Notes)
}

func TestBookDelete(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	book, err := svc.Create(ctx, "u1", CreateBookParams{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", book.ID))

	_, err = svc.Get(ctx, "u1", book.ID)
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))
}

func TestBookStats(t *testing.T) {
	store := newFakeStore()
	svc := NewBookService(store, discardLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", CreateBookParams{
		Title: "A", Author: "X", Status: domain.StatusCompleted,
		Pages: intPtr(300), CurrentPage: intPtr(300), Rating: intPtr(4),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", CreateBookParams{
		Title: "B", Author: "Y", Status: domain.StatusReading,
		CurrentPage: intPtr(50), Rating: intPtr(5),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", CreateBookParams{
		Title: "C", Author: "Z", Status: domain.StatusWantToRead,
	})
	require.NoError(t, err)
	// Someone else's book never counts.
	_, err = svc.Create(ctx, "u2", CreateBookParams{
		Title: "D", Author: "W", Status: domain.StatusCompleted, Rating: intPtr(1),
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Reading)
	assert.Equal(t, 1, stats.WantToRead)
	assert.Equal(t, 350, stats.TotalPagesRead)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.0001)
}

func TestBookStats_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("timeout")
	svc := NewBookService(store, discardLogger())

	_, err := svc.Stats(context.Background(), "u1")

	assert.Equal(t, apperrors.CodeBadRequest, codeOf(t, err))
}
