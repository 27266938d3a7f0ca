package model

import (
	"errors"
	"time"
)

// Post represents a single feed entry. A post is immutable after creation
// except for its like counter.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Caption   string    `db:"caption" json:"caption"`
	Image     *string   `db:"image" json:"image"`
	Likes     int       `db:"likes" json:"likes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined field (not in posts table)
	Author *UserSummary `json:"author,omitempty"`
}

// FeedResponse is the full feed: every post, newest first, no pagination.
type FeedResponse struct {
	Posts []Post `json:"posts"`
}

// LikeRequest carries the client-computed new like count. The server writes
// the raw value as-is; concurrent likes race last-write-wins.
type LikeRequest struct {
	Likes int `json:"likes" validate:"gte=0"`
}

const (
	// MaxPostImageSize is the upload limit checked before any storage call.
	MaxPostImageSize = 5 * 1024 * 1024 // 5MiB
)

// Post errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrEmptyCaption  = errors.New("caption must not be empty")
	ErrImageTooLarge = errors.New("image exceeds size limit")
)
