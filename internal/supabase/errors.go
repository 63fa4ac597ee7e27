package supabase

import (
	"errors"
	"fmt"
)

// Sentinel errors for Supabase API operations.
var (
	ErrNotFound             = errors.New("supabase: not found")
	ErrUnauthorized         = errors.New("supabase: unauthorized")
	ErrBadRequest           = errors.New("supabase: bad request")
	ErrRateLimited          = errors.New("supabase: rate limited by server")
	ErrServer               = errors.New("supabase: server error")
	ErrConfirmationRequired = errors.New("supabase: email confirmation required")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // Operation: "signUp", "signIn", "userFromToken", "insertBook", ...
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with operation context.
func wrapError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
