package service

import (
	"context"
	"fmt"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/recommend"
)

// TextGenerator produces a free-text completion for a prompt.
// Implemented by *gemini.Client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// RecommendationService builds AI book recommendations from the caller's
// reading history.
type RecommendationService struct {
	store     BookStore
	generator TextGenerator // nil when no API key is configured
	log       *logger.Logger
}

// NewRecommendationService creates a recommendation service. generator may
// be nil, in which case every request reports the provider as unavailable.
func NewRecommendationService(store BookStore, generator TextGenerator, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		store:     store,
		generator: generator,
		log:       log,
	}
}

// Enabled reports whether the language-model provider is configured.
func (s *RecommendationService) Enabled() bool {
	return s.generator != nil
}

// Recommendations returns up to five recommendations based on the caller's
// books. A caller with no books gets a static starter entry without the
// model being invoked. Model output is parsed defensively and never fails
// the request; provider failures surface as internal errors.
func (s *RecommendationService) Recommendations(ctx context.Context, user domain.User) (domain.RecommendationSet, error) {
	if s.generator == nil {
		return domain.RecommendationSet{}, apperrors.Unavailable("AI service not configured. Please add GEMINI_API_KEY to .env")
	}

	books, err := s.store.ListBooks(ctx, user.ID, "")
	if err != nil {
		s.log.Error("Failed to load books for recommendations", "error", err, "user_id", user.ID)
		return domain.RecommendationSet{}, apperrors.Internal(fmt.Sprintf("Failed to get recommendations: %v", err))
	}

	if len(books) == 0 {
		return domain.RecommendationSet{
			Recommendations: []domain.Recommendation{recommend.FallbackEmptyHistory},
		}, nil
	}

	history := domain.GroupHistory(books)
	basedOn := domain.BasedOn{
		CompletedBooks:  len(history.Completed),
		ReadingBooks:    len(history.Reading),
		WantToReadBooks: len(history.WantToRead),
	}

	s.log.Info("Generating AI recommendations", "user", user.Email)

	raw, err := s.generator.GenerateContent(ctx, recommend.BuildPrompt(history))
	if err != nil {
		s.log.Error("Recommendation generation failed", "error", err, "user_id", user.ID)
		return domain.RecommendationSet{}, apperrors.Internal(fmt.Sprintf("Failed to get recommendations: %v", err))
	}

	return domain.RecommendationSet{
		Recommendations: recommend.Parse(raw),
		BasedOn:         basedOn,
	}, nil
}
