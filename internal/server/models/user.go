package models

import "time"

// User is a registered wallet account. Users are created on registration and
// immutable afterwards.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the authenticated principal resolved from an access token.
// It is advisory: it is not re-validated against the users table on every
// request, so it stays valid until the token expires.
type Identity struct {
	Username string
	UserID   int64
}
