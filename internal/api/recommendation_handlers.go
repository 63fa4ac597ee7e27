package api

import (
	"net/http"

	"github.com/booktrackapp/booktrack-server/internal/http/response"
)

// handleGetRecommendations returns AI-generated book recommendations based
// on the caller's reading history. Responds 503 while the language-model
// provider is unconfigured.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	set, err := s.recs.Recommendations(r.Context(), user)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, set, s.logger)
}
