package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/cache"
	"github.com/PSINGLA1407/socialmedia/internal/imageurl"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/repository"
)

// FeedService assembles the home feed: the full post set, newest first,
// with author info attached and image URLs normalized to the canonical form.
type FeedService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	feedCache cache.FeedCache
	publicURL string
	log       *zap.Logger
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository, feedCache cache.FeedCache, publicURL string, log *zap.Logger) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		feedCache: feedCache,
		publicURL: publicURL,
		log:       log,
	}
}

// GetFeed returns every post in reverse chronological order. The database
// already sorts by created_at DESC; the order is preserved as-is through
// hydration, caching, and the response. Posts with unusable image values
// come back with image set to null.
func (s *FeedService) GetFeed(ctx context.Context) (*model.FeedResponse, error) {
	if s.feedCache != nil {
		if posts, ok, err := s.feedCache.Get(ctx); err != nil {
			s.log.Warn("feed cache read failed", zap.Error(err))
		} else if ok {
			return &model.FeedResponse{Posts: posts}, nil
		}
	}

	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.hydrateAuthors(ctx, posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Image = imageurl.Normalize(posts[i].Image, s.publicURL)
	}

	if s.feedCache != nil {
		if err := s.feedCache.Set(ctx, posts); err != nil {
			s.log.Warn("feed cache write failed", zap.Error(err))
		}
	}

	return &model.FeedResponse{Posts: posts}, nil
}

func (s *FeedService) hydrateAuthors(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(posts))
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}

	summaries, err := s.userRepo.GetSummaries(ctx, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		if summary, ok := summaries[posts[i].UserID]; ok {
			author := summary
			posts[i].Author = &author
		}
	}
	return nil
}
