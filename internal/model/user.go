package model

import (
	"errors"
	"strings"
	"time"
)

// User represents a credential holder in the system.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	DisplayName    string    `db:"display_name" json:"display_name"`
	AvatarURL      *string   `db:"avatar_url" json:"avatar_url"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// UserSummary is the lightweight author representation attached to posts.
type UserSummary struct {
	ID          int64   `db:"id" json:"id"`
	Email       string  `db:"email" json:"email"`
	DisplayName string  `db:"display_name" json:"display_name"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url"`
}

// SignUpRequest represents the data needed to create an account.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInRequest represents the data needed to sign in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DisplayNameFromEmail derives the default display name, matching the
// session provider behavior: everything before the "@".
func DisplayNameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when attempting to sign up with a taken email
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when sign-in credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
