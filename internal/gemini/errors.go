package gemini

import "errors"

// Sentinel errors for Gemini API operations.
var (
	ErrUnauthorized = errors.New("gemini: invalid or missing API key")
	ErrRateLimited  = errors.New("gemini: rate limited by server")
	ErrServer       = errors.New("gemini: server error")
	ErrNoCandidates = errors.New("gemini: response contained no candidates")
)
