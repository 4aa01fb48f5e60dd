package locker

import (
	"strings"

	"github.com/Reeshadali/PG/internal/model"
)

const (
	// DefaultUsername and DefaultPassword are the credentials seeded into an
	// empty store on first run.
	DefaultUsername = "default"
	DefaultPassword = "1318"
)

// Limits are the fixed ceilings every mutating service enforces.
type Limits struct {
	// MaxUploadSize caps one upload batch and, defensively, one file.
	MaxUploadSize int64
	// MaxStorageSize caps the total bytes one account may store.
	MaxStorageSize int64
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/")
}

func IsMimeTypeAllowed(mimeType string) bool {
	return IsImage(mimeType) || IsVideo(mimeType)
}

// MediaTypeOf derives the coarse category from the MIME type prefix.
func MediaTypeOf(mimeType string) model.MediaType {
	category, _, _ := strings.Cut(mimeType, "/")
	return model.MediaType(category)
}
