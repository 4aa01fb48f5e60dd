package locker

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
)

type uploaderSrv struct {
	store  port.UserStore
	limits Limits
	newID  port.UUIDGen
	now    func() time.Time
}

// NewUploader constructs an Uploader enforcing the given limits.
func NewUploader(store port.UserStore, limits Limits, newID port.UUIDGen) port.Uploader {
	return &uploaderSrv{store: store, limits: limits, newID: newID, now: time.Now}
}

// Upload runs the batch pipeline: batch-level validation first, then one
// reader goroutine per accepted file. File reads may finish in any order;
// every state mutation happens under one mutex, and a counting barrier
// fires the commit exactly once after all files have resolved.
func (s *uploaderSrv) Upload(ctx context.Context, in port.UploadInput) (*port.UploadOutput, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	acct, ok := users[in.Username]
	if !ok {
		return nil, ErrUserNotFound
	}

	out := &port.UploadOutput{}
	if len(in.Files) == 0 {
		return out, nil
	}

	var totalSize int64
	for _, f := range in.Files {
		totalSize += f.Size
	}
	if totalSize > s.limits.MaxUploadSize {
		return nil, &BatchTooLargeError{TotalSize: totalSize, MaxSize: s.limits.MaxUploadSize}
	}
	if available := s.limits.MaxStorageSize - acct.StorageUsed; totalSize > available {
		return nil, &QuotaExceededError{Shortfall: totalSize - available}
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		done int
	)
	total := len(in.Files)

	// Callers hold mu.
	advance := func() {
		done++
		if in.Progress != nil {
			in.Progress(int(math.Round(float64(done) / float64(total) * 100)))
		}
	}
	skip := func(name, reason string) {
		mu.Lock()
		defer mu.Unlock()
		out.Skipped = append(out.Skipped, port.SkippedFile{Name: name, Reason: reason})
		advance()
	}

	for _, f := range in.Files {
		if !IsMimeTypeAllowed(f.ContentType) {
			skip(f.Name, "not an image or video")
			continue
		}
		// Secondary guard: batch-level size can pass while one file alone
		// does not when sizes race between selection and read.
		if f.Size > s.limits.MaxUploadSize {
			skip(f.Name, fmt.Sprintf("exceeds maximum file size of %s", FormatFileSize(s.limits.MaxUploadSize)))
			continue
		}

		wg.Add(1)
		go func(f port.FileUpload) {
			defer wg.Done()

			raw, err := readFile(f)
			if err != nil {
				logger.Warnf(ctx, "reading %q failed: %v", f.Name, err)
				skip(f.Name, "could not be read")
				return
			}

			size := int64(len(raw))
			item := model.MediaItem{
				ID:            s.newID(),
				Name:          f.Name,
				Type:          MediaTypeOf(f.ContentType),
				Size:          size,
				FormattedSize: FormatFileSize(size),
				Data:          model.EncodeDataURL(f.ContentType, raw),
				FileType:      f.ContentType,
				UploadDate:    s.now(),
			}

			mu.Lock()
			defer mu.Unlock()
			acct.Media = append([]model.MediaItem{item}, acct.Media...) // newest first
			acct.StorageUsed += size
			out.Uploaded = append(out.Uploaded, toItemOutput(item))
			advance()
		}(f)
	}
	wg.Wait()

	if len(out.Uploaded) > 0 {
		if err := s.store.Save(ctx, users); err != nil {
			return nil, fmt.Errorf("persisting accounts: %w", err)
		}
	}
	return out, nil
}

func readFile(f port.FileUpload) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warnf(context.Background(), "failed to close reader for %q: %v", f.Name, err)
		}
	}()
	return io.ReadAll(rc)
}

func toItemOutput(item model.MediaItem) port.MediaItemOutput {
	return port.MediaItemOutput{
		ID:            item.ID,
		Name:          item.Name,
		Type:          item.Type,
		Size:          item.Size,
		FormattedSize: item.FormattedSize,
		FileType:      item.FileType,
		UploadDate:    item.UploadDate,
	}
}
