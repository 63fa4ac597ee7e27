package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/booktrackapp/booktrack-server/internal/domain"
)

// gotrueUser is the GoTrue wire representation of a user.
type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

// toDomain converts a GoTrue user, falling back to the email address when
// no name was stored in the profile metadata.
func (u gotrueUser) toDomain() domain.User {
	name := u.UserMetadata.Name
	if name == "" {
		name = u.Email
	}
	return domain.User{
		ID:    u.ID,
		Email: u.Email,
		Name:  name,
	}
}

// authSession is the GoTrue session response for signup and password login.
// Signup against a project requiring email confirmation returns a bare user
// object instead, with no access token.
type authSession struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *gotrueUser `json:"user"`

	// Set on the bare-user signup response shape.
	ID string `json:"id"`
}

// SignUp registers a new user with the given profile name stored in the
// user metadata. Returns ErrConfirmationRequired when the project demands
// email confirmation before a session can be issued.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (domain.Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data": map[string]any{
			"name": name,
		},
	}

	body, err := c.doRequest(ctx, http.MethodPost, authBasePath+"/signup", nil, requestOptions{payload: payload})
	if err != nil {
		return domain.Session{}, wrapError("signUp", err)
	}

	var resp authSession
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Session{}, wrapError("signUp", fmt.Errorf("parse response: %w", err))
	}

	if resp.AccessToken == "" || resp.User == nil {
		// User created but no session: the address must be confirmed first.
		return domain.Session{}, wrapError("signUp", ErrConfirmationRequired)
	}

	return domain.Session{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		User:        resp.User.toDomain(),
	}, nil
}

// SignIn exchanges an email/password pair for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	query := url.Values{}
	query.Set("grant_type", "password")

	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	body, err := c.doRequest(ctx, http.MethodPost, authBasePath+"/token", query, requestOptions{payload: payload})
	if err != nil {
		return domain.Session{}, wrapError("signIn", err)
	}

	var resp authSession
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Session{}, wrapError("signIn", fmt.Errorf("parse response: %w", err))
	}

	if resp.AccessToken == "" || resp.User == nil {
		return domain.Session{}, wrapError("signIn", ErrConfirmationRequired)
	}

	return domain.Session{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		User:        resp.User.toDomain(),
	}, nil
}

// UserFromToken resolves the user a bearer token belongs to.
func (c *Client) UserFromToken(ctx context.Context, token string) (domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, authBasePath+"/user", nil, requestOptions{bearer: token})
	if err != nil {
		return domain.User{}, wrapError("userFromToken", err)
	}

	var resp gotrueUser
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.User{}, wrapError("userFromToken", fmt.Errorf("parse response: %w", err))
	}

	if resp.ID == "" {
		return domain.User{}, wrapError("userFromToken", ErrUnauthorized)
	}

	return resp.toDomain(), nil
}
