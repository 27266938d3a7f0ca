// Package imageurl rewrites stored image references into fetchable public
// URLs. Two host forms exist historically: the legacy direct-storage form
// (https://storage.googleapis.com/<bucket>/<key>) and the canonical
// public-access form (<public-base>/<bucket>/<key>). A past bug also wrote
// bare timestamps into the image column; those read as "no image".
package imageurl

import (
	"net/url"
	"regexp"
	"strings"
)

// LegacyStorageHost is the direct-storage host emitted by the old GCS-backed
// deployment.
const LegacyStorageHost = "storage.googleapis.com"

// datePrefix matches values like "2024-01-01T09:30:00Z" that were
// accidentally persisted in the image column.
var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Normalize maps a stored image value to the URL that should be rendered.
//
// Contract:
//   - nil or empty input returns nil (no image)
//   - a value with a bare ISO-date prefix returns nil (corrupted row)
//   - a legacy direct-storage URL is rewritten onto publicBase, keeping the
//     bucket/key path
//   - a URL already on the canonical public base is returned unchanged
//   - anything else is passed through untouched; rendering failures are the
//     client's concern
func Normalize(raw *string, publicBase string) *string {
	if raw == nil {
		return nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	if datePrefix.MatchString(value) {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil || u.Host != LegacyStorageHost {
		return &value
	}

	base := strings.TrimSuffix(publicBase, "/")
	if base == "" {
		return &value
	}

	rewritten := base + u.Path
	return &rewritten
}
