package api

import (
	"net/http"

	"github.com/booktrackapp/booktrack-server/internal/http/response"
)

// SignupRequest is the request body for account creation.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// handleSignup registers a new user and returns the session issued by the
// identity gateway.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	session, err := s.auth.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, session, s.logger)
}

// handleLogin exchanges credentials for a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, session, s.logger)
}

// handleMe returns the authenticated user's profile.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	response.Success(w, currentUser(r.Context()), s.logger)
}
