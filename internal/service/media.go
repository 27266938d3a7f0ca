package service

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/storage"
)

// MediaService handles avatar image processing: validation, a square
// center-crop resize, and upload to object storage.
type MediaService struct {
	uploader storage.Uploader
	log      *zap.Logger
}

func NewMediaService(uploader storage.Uploader, log *zap.Logger) *MediaService {
	return &MediaService{
		uploader: uploader,
		log:      log,
	}
}

// UploadAvatar validates, resizes, and stores the avatar image, returning
// the public URL of the stored copy.
func (m *MediaService) UploadAvatar(ctx context.Context, userID int64, data []byte, contentType string) (*model.UploadResult, error) {
	if len(data) > model.MaxAvatarSizeBytes {
		return nil, model.ErrFileTooLarge
	}
	if !model.IsAllowedImageType(contentType) {
		return nil, model.ErrInvalidImageType
	}

	processed, err := m.resizeAvatar(data)
	if err != nil {
		return nil, fmt.Errorf("failed to process avatar: %w", err)
	}

	key := avatarObjectKey(userID)
	if err := m.uploader.Upload(ctx, key, processed, model.ContentTypeJPEG); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := m.uploader.PublicURL(key)
	m.log.Info("avatar uploaded", zap.Int64("user_id", userID), zap.String("key", key))

	return &model.UploadResult{URL: url, Key: key}, nil
}

// resizeAvatar center-crops the image to a 200x200 square and re-encodes it
// as JPEG regardless of the input format.
func (m *MediaService) resizeAvatar(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fill(img, model.AvatarWidth, model.AvatarHeight, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func avatarObjectKey(userID int64) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s/%d-%s%s", model.AvatarFolder, userID, id, model.AvatarExt)
}
