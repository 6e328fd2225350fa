package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for object storage operations. Uploads
// go straight from the client to the provider through presigned URLs.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ErrUnsupportedContentType is returned for uploads outside imageExtensions.
var ErrUnsupportedContentType = errors.New("unsupported content type")

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// NormalizeContentType lowercases and trims contentType and reports whether
// it is an accepted image type.
func NormalizeContentType(contentType string) (string, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	_, ok := imageExtensions[ct]
	return ct, ok
}

// ObjectKey builds "<prefix>/<owner>/<uuid>.<ext>". The extension is looked
// up from the content type and never taken from the caller's input.
func ObjectKey(prefix, owner, contentType string) (string, error) {
	ct, ok := NormalizeContentType(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
	return fmt.Sprintf("%s/%s/%s.%s", prefix, owner, uuid.NewString(), imageExtensions[ct]), nil
}

// OwnedBy reports whether key was issued by ObjectKey for prefix and owner.
// Keys with dot segments or other non-canonical forms are never owned.
func OwnedBy(key, prefix, owner string) bool {
	if key != path.Clean(key) || strings.Contains(key, "..") {
		return false
	}
	return path.Dir(key) == prefix+"/"+owner
}
