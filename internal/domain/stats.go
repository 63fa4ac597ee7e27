package domain

import "math"

// Stats aggregates a user's reading activity.
type Stats struct {
	TotalBooks     int     `json:"total_books"`
	Completed      int     `json:"completed"`
	Reading        int     `json:"reading"`
	WantToRead     int     `json:"want_to_read"`
	TotalPagesRead int     `json:"total_pages_read"`
	AverageRating  float64 `json:"average_rating"`
}

// Summarize computes aggregate statistics over a book list.
// Missing current_page counts as 0; the rating mean covers only rated books
// and is rounded to one decimal place, or 0 when nothing is rated.
func Summarize(books []Book) Stats {
	s := Stats{TotalBooks: len(books)}

	ratingSum := 0
	ratedCount := 0
	for _, b := range books {
		switch b.Status {
		case StatusCompleted:
			s.Completed++
		case StatusReading:
			s.Reading++
		case StatusWantToRead:
			s.WantToRead++
		}

		if b.CurrentPage != nil {
			s.TotalPagesRead += *b.CurrentPage
		}
		if b.Rating != nil {
			ratingSum += *b.Rating
			ratedCount++
		}
	}

	if ratedCount > 0 {
		s.AverageRating = math.Round(float64(ratingSum)/float64(ratedCount)*10) / 10
	}
	return s
}
