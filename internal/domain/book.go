// Package domain contains the core types for the BookTrack API.
package domain

import "time"

// Status represents a reading-progress bucket. The set is open: the store
// accepts any non-empty value, but statistics and recommendation history
// only group by the three well-known buckets below.
type Status string

const (
	// StatusWantToRead marks a book on the to-read pile.
	StatusWantToRead Status = "want_to_read"
	// StatusReading marks a book currently being read.
	StatusReading Status = "reading"
	// StatusCompleted marks a finished book.
	StatusCompleted Status = "completed"
)

// Book represents a tracked book owned by a single user.
// IDs and timestamps are assigned by the book store, never locally.
type Book struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Status      Status    `json:"status"`
	Pages       *int      `json:"pages"`
	CurrentPage *int      `json:"current_page"`
	Rating      *int      `json:"rating"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Line renders the book as a "title by author" history line.
func (b Book) Line() string {
	return b.Title + " by " + b.Author
}

// ReadingHistory groups a user's books into the well-known status buckets,
// rendered as "title by author" lines for prompt construction.
type ReadingHistory struct {
	Completed  []string
	Reading    []string
	WantToRead []string
}

// Empty returns true when every bucket is empty.
func (h ReadingHistory) Empty() bool {
	return len(h.Completed) == 0 && len(h.Reading) == 0 && len(h.WantToRead) == 0
}

// GroupHistory builds a ReadingHistory from a book list.
// Books with statuses outside the well-known buckets are ignored.
func GroupHistory(books []Book) ReadingHistory {
	var h ReadingHistory
	for _, b := range books {
		switch b.Status {
		case StatusCompleted:
			h.Completed = append(h.Completed, b.Line())
		case StatusReading:
			h.Reading = append(h.Reading, b.Line())
		case StatusWantToRead:
			h.WantToRead = append(h.WantToRead, b.Line())
		}
	}
	return h
}
