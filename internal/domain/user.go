package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// Session is returned by a successful sign-in.
type Session struct {
	Token     string
	TokenID   string
	UserID    string
	ExpiresAt time.Time
}
