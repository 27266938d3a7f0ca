package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PSINGLA1407/socialmedia/internal/model"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	query := `
		SELECT user_id, bio, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile row implicitly on first save.
func (r *profileRepository) Upsert(ctx context.Context, userID int64, bio string) (*model.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, bio, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET bio = EXCLUDED.bio, updated_at = NOW()
		RETURNING user_id, bio, updated_at
	`
	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, query, userID, bio)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return &profile, nil
}
