package port

import (
	"context"
	"io"
	"time"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/uuid"
)

type UUIDGen func() uuid.UUID

// Authenticator checks a username/password pair against the user store.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) error
}
type LoginInput struct {
	Username string
	Password string
}

// FileUpload is one selected file of an upload batch. Open is called from
// the worker goroutine that reads the file, so each file gets its own
// reader.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Uploader validates a batch of files and stores the accepted ones.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (*UploadOutput, error)
}
type UploadInput struct {
	Username string
	Files    []FileUpload
	// Progress, when set, receives the running completion percentage as
	// files finish (accepted or skipped), in whatever order they complete.
	Progress func(percent int)
}
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
type UploadOutput struct {
	Uploaded []MediaItemOutput `json:"uploaded"`
	Skipped  []SkippedFile     `json:"skipped"`
}

// MediaItemOutput is item metadata without the embedded file contents.
type MediaItemOutput struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Type          model.MediaType `json:"type"`
	Size          int64           `json:"size"`
	FormattedSize string          `json:"formattedSize"`
	FileType      string          `json:"fileType"`
	UploadDate    time.Time       `json:"uploadDate"`
}

// Gallery lists an account's media and fetches single items for download.
type Gallery interface {
	List(ctx context.Context, in ListInput) ([]MediaItemOutput, error)
	Get(ctx context.Context, username string, id uuid.UUID) (*model.MediaItem, error)
}
type ListInput struct {
	Username string
	Filter   string // "all", "image" or "video"
}

// MediaDeleter removes one item by identifier. A missing identifier is a
// silent no-op.
type MediaDeleter interface {
	Delete(ctx context.Context, username string, id uuid.UUID) error
}

// Exporter packages an account's full media list into one ZIP archive.
type Exporter interface {
	Export(ctx context.Context, username string) (*ExportOutput, error)
}
type ExportOutput struct {
	Filename string
	Archive  []byte
}

// Meter reports an account's storage usage against the fixed ceiling.
type Meter interface {
	Usage(ctx context.Context, username string) (*UsageOutput, error)
}
type UsageOutput struct {
	UsedBytes      int64  `json:"usedBytes"`
	TotalBytes     int64  `json:"totalBytes"`
	UsedFormatted  string `json:"used"`
	TotalFormatted string `json:"total"`
	Percent        int    `json:"percent"`
	Severity       string `json:"severity"` // "ok", "warning" or "critical"
}

// AccountAdmin is the administrative surface over the user store. It is
// wired into the admin CLI only, never into the HTTP API.
type AccountAdmin interface {
	CreateUser(ctx context.Context, username, password string) error
	ListUsers(ctx context.Context) ([]string, error)
	DeleteUser(ctx context.Context, username string) error
}
