// Package service contains the business services between the HTTP layer and
// the external providers.
package service

import (
	"context"
	"fmt"

	"github.com/booktrackapp/booktrack-server/internal/domain"
	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
	"github.com/booktrackapp/booktrack-server/internal/logger"
	"github.com/booktrackapp/booktrack-server/internal/supabase"
)

// Identity is the subset of the identity gateway used by AuthService.
// Implemented by *supabase.Client.
type Identity interface {
	SignUp(ctx context.Context, email, password, name string) (domain.Session, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	UserFromToken(ctx context.Context, token string) (domain.User, error)
}

// AuthService handles signup, login, and token verification by delegating
// to the identity gateway and translating its failures into domain errors.
type AuthService struct {
	identity Identity
	log      *logger.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(identity Identity, log *logger.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		log:      log,
	}
}

// SignUp registers a new account and returns its first session.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (domain.Session, error) {
	s.log.Info("Attempting signup", "email", email)

	session, err := s.identity.SignUp(ctx, email, password, name)
	if err != nil {
		if apperrors.Is(err, supabase.ErrConfirmationRequired) {
			return domain.Session{}, apperrors.EmailUnconfirmed("Please check your email to confirm your account before logging in")
		}
		s.log.Error("Signup failed", "email", email, "error", err)
		return domain.Session{}, apperrors.BadRequest(fmt.Sprintf("Signup failed: %v", err))
	}

	return session, nil
}

// Login exchanges credentials for a session. All failures surface as 401:
// credential validity is never distinguished beyond the message string.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	s.log.Info("Attempting login", "email", email)

	session, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		if apperrors.Is(err, supabase.ErrConfirmationRequired) {
			return domain.Session{}, apperrors.Unauthorized("Email not confirmed. Please check your email.")
		}
		if apperrors.Is(err, supabase.ErrBadRequest) || apperrors.Is(err, supabase.ErrUnauthorized) {
			return domain.Session{}, apperrors.InvalidCredentials("Invalid email or password")
		}
		s.log.Error("Login failed", "email", email, "error", err)
		return domain.Session{}, apperrors.InvalidCredentials(fmt.Sprintf("Login failed: %v", err))
	}

	return session, nil
}

// VerifyToken resolves the user behind a bearer token.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (domain.User, error) {
	user, err := s.identity.UserFromToken(ctx, token)
	if err != nil {
		return domain.User{}, apperrors.Unauthorized("Invalid or expired token")
	}
	return user, nil
}
