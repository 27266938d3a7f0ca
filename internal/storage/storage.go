// Package storage holds the object-storage backends for uploaded images.
// Every backend uploads by generated object name and exposes a stable public
// URL for the object; nothing here retries or signs URLs.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader is the object-storage surface the services depend on.
type Uploader interface {
	// Upload stores data under key. A failed upload aborts the caller's whole
	// submission; no partial object is referenced anywhere.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the unauthenticated public link for an object key.
	PublicURL(key string) string
}

// ObjectName builds a collision-resistant object name from the current time,
// a random suffix, and the original file extension.
func ObjectName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".jpg"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
