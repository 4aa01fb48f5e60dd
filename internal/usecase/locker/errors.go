package locker

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthFailed deliberately covers both unknown usernames and wrong
	// passwords so callers cannot tell the two apart.
	ErrAuthFailed      = errors.New("locker: invalid username or password")
	ErrItemNotFound    = errors.New("locker: media item not found")
	ErrNothingToExport = errors.New("locker: no media items to export")
	ErrUserExists      = errors.New("locker: user already exists")
	ErrUserNotFound    = errors.New("locker: user not found")
)

// BatchTooLargeError rejects a whole upload batch whose combined size
// exceeds the per-upload ceiling.
type BatchTooLargeError struct {
	TotalSize int64
	MaxSize   int64
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("total upload size (%s) exceeds the maximum allowed (%s)",
		FormatFileSize(e.TotalSize), FormatFileSize(e.MaxSize))
}

// QuotaExceededError rejects a whole upload batch that does not fit in the
// account's remaining quota.
type QuotaExceededError struct {
	Shortfall int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("not enough storage available: %s more space needed",
		FormatFileSize(e.Shortfall))
}
