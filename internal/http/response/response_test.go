package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
)

func TestSuccess_WritesJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"status": "ok"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, map[string]string{"id": "b1"}, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError_WritesUniformShape(t *testing.T) {
	rec := httptest.NewRecorder()

	NotFound(rec, "Book not found", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Book not found", body.Error)
}

func TestHandleError_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.NotFound("missing"), http.StatusNotFound},
		{apperrors.Unauthorized("no token"), http.StatusUnauthorized},
		{apperrors.InvalidCredentials("bad password"), http.StatusUnauthorized},
		{apperrors.BadRequest("store exploded"), http.StatusBadRequest},
		{apperrors.Validation("bad body"), http.StatusBadRequest},
		{apperrors.Unavailable("ai not configured"), http.StatusServiceUnavailable},
		{apperrors.Internal("parse failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		HandleError(rec, tt.err, nil)
		assert.Equal(t, tt.want, rec.Code, "error %v", tt.err)
	}
}

func TestHandleError_UnknownErrorBecomes500(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, fmt.Errorf("something odd"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
