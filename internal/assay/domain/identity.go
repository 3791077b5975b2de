package domain

import "time"

// Identity is a registered user's authentication record. The ID doubles as
// the login handle (an email) and is immutable once created.
type Identity struct {
	ID           string
	PasswordHash string // argon2id PHC encoded
	DisplayName  string
	CreatedAt    time.Time
}

// Session is the payload returned on a successful login.
type Session struct {
	Token       string
	UserID      string
	DisplayName string
}
