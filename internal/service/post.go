package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/cache"
	"github.com/PSINGLA1407/socialmedia/internal/imageurl"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/repository"
	"github.com/PSINGLA1407/socialmedia/internal/storage"
)

// ImageUpload carries the raw bytes of an attached image.
type ImageUpload struct {
	Filename    string
	Data        []byte
	ContentType string
}

type PostService struct {
	postRepo  repository.PostRepository
	uploader  storage.Uploader
	feedCache cache.FeedCache
	publicURL string
	log       *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, uploader storage.Uploader, feedCache cache.FeedCache, publicURL string, log *zap.Logger) *PostService {
	return &PostService{
		postRepo:  postRepo,
		uploader:  uploader,
		feedCache: feedCache,
		publicURL: publicURL,
		log:       log,
	}
}

// Create validates the caption and optional image before touching storage or
// the database. A blank caption fails locally with no side effects; an
// oversized image is rejected before any upload is attempted. If the image
// upload fails the post is not created.
func (s *PostService) Create(ctx context.Context, userID int64, caption string, image *ImageUpload) (*model.Post, error) {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil, model.ErrEmptyCaption
	}

	var imageURL *string
	if image != nil {
		if len(image.Data) > model.MaxPostImageSize {
			return nil, model.ErrImageTooLarge
		}
		if !model.IsAllowedImageType(image.ContentType) {
			return nil, model.ErrInvalidImageType
		}

		key := storage.ObjectName(image.Filename)
		if err := s.uploader.Upload(ctx, key, image.Data, image.ContentType); err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		url := s.uploader.PublicURL(key)
		imageURL = &url
	}

	post, err := s.postRepo.Create(ctx, userID, caption, imageURL)
	if err != nil {
		return nil, err
	}
	post.Image = imageurl.Normalize(post.Image, s.publicURL)

	s.invalidateFeed(ctx)
	return post, nil
}

// Like overwrites the post's like counter with the client-computed value.
// The write is attempted exactly once; on failure the caller reverts its
// optimistic state.
func (s *PostService) Like(ctx context.Context, postID int64, likes int) (*model.Post, error) {
	post, err := s.postRepo.UpdateLikes(ctx, postID, likes)
	if err != nil {
		return nil, err
	}
	post.Image = imageurl.Normalize(post.Image, s.publicURL)

	s.invalidateFeed(ctx)
	return post, nil
}

// invalidateFeed drops the cached feed snapshot after a write. The cache is
// best-effort: a failed invalidation is logged, not surfaced, because the
// snapshot expires on its own.
func (s *PostService) invalidateFeed(ctx context.Context) {
	if s.feedCache == nil {
		return
	}
	if err := s.feedCache.Invalidate(ctx); err != nil {
		s.log.Warn("failed to invalidate feed cache", zap.Error(err))
	}
}
