package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
)

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation on it.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	return s.validator.Validate(dst)
}
