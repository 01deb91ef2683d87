package models

// Session represents an HTTP API login session.
type Session struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	CreatedAt int64  `json:"created_at" db:"created_at"` // Epoch seconds
	ExpiresAt int64  `json:"expires_at" db:"expires_at"` // Epoch seconds
}

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	SessionCreated      bool
	PasswordCorrect     bool
	UserID              string
	SessionID           string
	Balance             int64
	CooldownRemainingMs int64
}
