package service

import (
	"context"
	"errors"

	"github.com/PSINGLA1407/socialmedia/internal/model"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *model.User) error
	GetByIDFunc       func(ctx context.Context, id int64) (*model.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*model.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	GetSummariesFunc  func(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error)
	UpdateAvatarFunc  func(ctx context.Context, userID int64, avatarURL string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFunc(ctx, email)
}

func (m *mockUserRepository) GetSummaries(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error) {
	return m.GetSummariesFunc(ctx, ids)
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	return m.UpdateAvatarFunc(ctx, userID, avatarURL)
}

type mockPostRepository struct {
	CreateFunc      func(ctx context.Context, userID int64, caption string, image *string) (*model.Post, error)
	GetByIDFunc     func(ctx context.Context, postID int64) (*model.Post, error)
	ListAllFunc     func(ctx context.Context) ([]model.Post, error)
	ListByUserFunc  func(ctx context.Context, userID int64) ([]model.Post, error)
	UpdateLikesFunc func(ctx context.Context, postID int64, likes int) (*model.Post, error)
}

func (m *mockPostRepository) Create(ctx context.Context, userID int64, caption string, image *string) (*model.Post, error) {
	return m.CreateFunc(ctx, userID, caption, image)
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	return m.GetByIDFunc(ctx, postID)
}

func (m *mockPostRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	return m.ListAllFunc(ctx)
}

func (m *mockPostRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockPostRepository) UpdateLikes(ctx context.Context, postID int64, likes int) (*model.Post, error) {
	return m.UpdateLikesFunc(ctx, postID, likes)
}

type mockProfileRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID int64) (*model.Profile, error)
	UpsertFunc      func(ctx context.Context, userID int64, bio string) (*model.Profile, error)
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *mockProfileRepository) Upsert(ctx context.Context, userID int64, bio string) (*model.Profile, error) {
	return m.UpsertFunc(ctx, userID, bio)
}

type mockUploader struct {
	UploadFunc    func(ctx context.Context, key string, data []byte, contentType string) error
	PublicURLFunc func(key string) string
	uploads       int
}

func (m *mockUploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	m.uploads++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data, contentType)
	}
	return nil
}

func (m *mockUploader) PublicURL(key string) string {
	if m.PublicURLFunc != nil {
		return m.PublicURLFunc(key)
	}
	return "https://cdn.example.com/bucket/" + key
}

type mockFeedCache struct {
	GetFunc        func(ctx context.Context) ([]model.Post, bool, error)
	SetFunc        func(ctx context.Context, posts []model.Post) error
	InvalidateFunc func(ctx context.Context) error
	invalidations  int
}

func (m *mockFeedCache) Get(ctx context.Context) ([]model.Post, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, false, nil
}

func (m *mockFeedCache) Set(ctx context.Context, posts []model.Post) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, posts)
	}
	return nil
}

func (m *mockFeedCache) Invalidate(ctx context.Context) error {
	m.invalidations++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

var errRepo = errors.New("repository failure")
