package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// User is the public view of a user returned by the API.
type User struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Public converts a database record to its API representation.
func (u *UserDB) Public() User {
	return User{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
