package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	"github.com/booktrackapp/booktrack-server/internal/http/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUser contextKey = "user"

// requireAuth is middleware that validates the bearer credential against
// the identity gateway and attaches the resolved user to the request
// context. Every protected route runs through here before touching the
// book store or the language model.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format", s.logger)
			return
		}

		user, err := s.auth.VerifyToken(r.Context(), parts[1])
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser extracts the authenticated user from request context.
// The zero User means not authenticated.
func currentUser(ctx context.Context) domain.User {
	if user, ok := ctx.Value(contextKeyUser).(domain.User); ok {
		return user
	}
	return domain.User{}
}
