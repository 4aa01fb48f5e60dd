package model

import (
	"time"

	"github.com/Reeshadali/PG/internal/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaItem is one uploaded image or video. Items are immutable once stored;
// Data holds the full file contents as a data: URL so a record is
// self-contained and renderable without touching any other storage.
type MediaItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          MediaType `json:"type"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formattedSize"`
	Data          string    `json:"data"`
	FileType      string    `json:"fileType"`
	UploadDate    time.Time `json:"uploadDate"`
}
