package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PSINGLA1407/socialmedia/internal/config"
)

// LocalUploader writes objects to disk for development runs without cloud
// credentials. Public URLs are served by the application under /uploads.
type LocalUploader struct {
	basePath string
	baseURL  string
}

func NewLocalUploader(cfg *config.Config) (*LocalUploader, error) {
	basePath := cfg.LocalStoragePath
	if basePath == "" {
		basePath = "uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = "/uploads"
	}

	return &LocalUploader{basePath: basePath, baseURL: baseURL}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	fullPath := filepath.Join(u.basePath, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (u *LocalUploader) PublicURL(key string) string {
	return u.baseURL + "/" + key
}
