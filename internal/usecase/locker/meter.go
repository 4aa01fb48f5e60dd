package locker

import (
	"context"
	"fmt"
	"math"

	"github.com/Reeshadali/PG/internal/port"
)

const (
	SeverityOK       = "ok"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

type meterSrv struct {
	store  port.UserStore
	limits Limits
}

// NewMeter constructs the storage usage reader.
func NewMeter(store port.UserStore, limits Limits) port.Meter {
	return &meterSrv{store: store, limits: limits}
}

func (s *meterSrv) Usage(ctx context.Context, username string) (*port.UsageOutput, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	acct, ok := users[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	percent := int(math.Round(float64(acct.StorageUsed) / float64(s.limits.MaxStorageSize) * 100))

	// Boundary values belong to the higher band.
	severity := SeverityOK
	switch {
	case percent >= 90:
		severity = SeverityCritical
	case percent >= 75:
		severity = SeverityWarning
	}

	return &port.UsageOutput{
		UsedBytes:      acct.StorageUsed,
		TotalBytes:     s.limits.MaxStorageSize,
		UsedFormatted:  FormatFileSize(acct.StorageUsed),
		TotalFormatted: FormatFileSize(s.limits.MaxStorageSize),
		Percent:        percent,
		Severity:       severity,
	}, nil
}
