package domain

// Recommendation is a single AI-suggested book. Produced only by the
// recommendation parser, never persisted.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// BasedOn reports how many history lines in each bucket informed a
// recommendation response.
type BasedOn struct {
	CompletedBooks  int `json:"completed_books"`
	ReadingBooks    int `json:"reading_books"`
	WantToReadBooks int `json:"want_to_read_books"`
}

// RecommendationSet is the payload of the recommendations endpoint.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	BasedOn         BasedOn          `json:"based_on"`
}
