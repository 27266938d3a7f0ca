package model

import (
	"errors"
	"time"
)

// Profile holds the user-editable bio. A profile row may be absent; that
// reads as an empty bio and the row is created on first save.
type Profile struct {
	UserID    int64      `db:"user_id" json:"user_id"`
	Bio       string     `db:"bio" json:"bio"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ProfileResponse is the profile view: identity, bio, and authored posts
// (most recent first).
type ProfileResponse struct {
	User      *User  `json:"user"`
	Bio       string `json:"bio"`
	Posts     []Post `json:"posts"`
	PostCount int    `json:"post_count"`
}

// UpdateProfileRequest is the request body for saving the bio.
type UpdateProfileRequest struct {
	Bio string `json:"bio" validate:"max=150"`
}

// MaxBioLength is enforced at input time; the store itself does not
// guarantee it.
const MaxBioLength = 150

var (
	ErrBioTooLong = errors.New("bio too long")

	// ErrProfileNotFound is a repository-level signal; callers treat a
	// missing row as an empty bio, never as a user-facing error.
	ErrProfileNotFound = errors.New("profile not found")
)
