package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PSINGLA1407/socialmedia/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post. The backend assigns id and created_at; likes
// starts at zero.
func (r *postRepository) Create(ctx context.Context, userID int64, caption string, image *string) (*model.Post, error) {
	query := `
		INSERT INTO posts (user_id, caption, image, likes)
		VALUES ($1, $2, $3, 0)
		RETURNING id, user_id, caption, image, likes, created_at
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, userID, caption, image)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT id, user_id, caption, image, likes, created_at
		FROM posts
		WHERE id = $1
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// ListAll fetches the whole post set, newest first. No pagination: the feed
// retrieves everything on every load.
func (r *postRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	query := `
		SELECT id, user_id, caption, image, likes, created_at
		FROM posts
		ORDER BY created_at DESC
	`
	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT id, user_id, caption, image, likes, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return posts, nil
}

// UpdateLikes overwrites the like counter with the client-computed value.
// Last write wins across concurrent clients.
func (r *postRepository) UpdateLikes(ctx context.Context, postID int64, likes int) (*model.Post, error) {
	query := `
		UPDATE posts SET likes = $1
		WHERE id = $2
		RETURNING id, user_id, caption, image, likes, created_at
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, likes, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update likes: %w", err)
	}
	return &post, nil
}
