package domain

import "time"

// User represents an authenticated application user. PasswordHash is a
// bcrypt hash and must never leave the service layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
