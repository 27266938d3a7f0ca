package storage

import (
	"context"
	"fmt"

	gstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/PSINGLA1407/socialmedia/internal/config"
)

// GCSUploader is the legacy backend. Its public URLs use the direct
// storage.googleapis.com host form, which the feed normalizes into the
// canonical public form before rendering.
type GCSUploader struct {
	client *gstorage.Client
	bucket string
}

func NewGCSUploader(ctx context.Context, cfg *config.Config) (*GCSUploader, error) {
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("missing GCS bucket configuration")
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}

	client, err := gstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSUploader{client: client, bucket: cfg.StorageBucket}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish upload: %w", err)
	}
	return nil
}

func (u *GCSUploader) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key)
}
