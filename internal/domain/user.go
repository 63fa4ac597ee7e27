package domain

// User represents an authenticated account. Profile data is owned by the
// identity provider; this service only ever reads it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the credential bundle returned by signup and login.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
