package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/imageurl"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	media       *MediaService
	publicURL   string
	log         *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, postRepo repository.PostRepository, media *MediaService, publicURL string, log *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		media:       media,
		publicURL:   publicURL,
		log:         log,
	}
}

// Get returns the user's profile page data: account info, bio, and their
// posts newest first. A user who never saved a bio has no profile row; that
// reads as an empty bio, not an error.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*model.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	bio := ""
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}
	if profile != nil {
		bio = profile.Bio
	}

	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Image = imageurl.Normalize(posts[i].Image, s.publicURL)
	}

	return &model.ProfileResponse{
		User:      user,
		Bio:       bio,
		Posts:     posts,
		PostCount: len(posts),
	}, nil
}

// UpdateBio saves the bio, creating the profile row on first save. The limit
// counts characters, not bytes.
func (s *ProfileService) UpdateBio(ctx context.Context, userID int64, bio string) (*model.Profile, error) {
	bio = strings.TrimSpace(bio)
	if utf8.RuneCountInString(bio) > model.MaxBioLength {
		return nil, model.ErrBioTooLong
	}
	return s.profileRepo.Upsert(ctx, userID, bio)
}

// UpdateAvatar processes the uploaded image and points the user record at
// the stored copy.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID int64, data []byte, contentType string) (*model.UploadResult, error) {
	result, err := s.media.UploadAvatar(ctx, userID, data, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateAvatar(ctx, userID, result.URL); err != nil {
		return nil, err
	}
	return result, nil
}
