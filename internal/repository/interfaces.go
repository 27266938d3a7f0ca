package repository

import (
	"context"

	"github.com/PSINGLA1407/socialmedia/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetSummaries batch-fetches author summaries for feed hydration.
	GetSummaries(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error)
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
}

type PostRepository interface {
	Create(ctx context.Context, userID int64, caption string, image *string) (*model.Post, error)
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// ListAll returns every post ordered by created_at descending. The feed
	// renders the result verbatim; callers never re-sort.
	ListAll(ctx context.Context) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	// UpdateLikes writes the raw like counter. Concurrent writers race
	// last-write-wins; there is deliberately no guard here.
	UpdateLikes(ctx context.Context, postID int64, likes int) (*model.Post, error)
}

type ProfileRepository interface {
	// GetByUserID returns model.ErrProfileNotFound when no row exists.
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	// Upsert creates the row on first save and updates bio + updated_at after.
	Upsert(ctx context.Context, userID int64, bio string) (*model.Profile, error)
}
