package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/booktrackapp/booktrack-server/internal/errors"
	"github.com/booktrackapp/booktrack-server/internal/logger"
)

func discardLogger() *logger.Logger {
	return logger.New(logger.Config{
		Writer: io.Discard,
		Format: "json",
		Level:  slog.LevelError,
	})
}

// codeOf extracts the domain error code, failing the test when err is not a
// coded error.
func codeOf(t *testing.T, err error) apperrors.Code {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
