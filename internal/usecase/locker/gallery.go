package locker

import (
	"context"
	"fmt"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/uuid"
)

const (
	FilterAll   = "all"
	FilterImage = "image"
	FilterVideo = "video"
)

type gallerySrv struct {
	store port.UserStore
}

// NewGallery constructs the read-only listing/download service.
func NewGallery(store port.UserStore) port.Gallery {
	return &gallerySrv{store: store}
}

// List returns the account's items matching the filter, in stored order
// (newest first). An empty filter means "all".
func (s *gallerySrv) List(ctx context.Context, in port.ListInput) ([]port.MediaItemOutput, error) {
	filter := in.Filter
	if filter == "" {
		filter = FilterAll
	}
	if filter != FilterAll && filter != FilterImage && filter != FilterVideo {
		return nil, fmt.Errorf("unknown media type filter %q", in.Filter)
	}

	acct, err := s.account(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	out := make([]port.MediaItemOutput, 0, len(acct.Media))
	for _, item := range acct.Media {
		if filter != FilterAll && item.Type != model.MediaType(filter) {
			continue
		}
		out = append(out, toItemOutput(item))
	}
	return out, nil
}

// Get returns one full item, embedded contents included, for download.
func (s *gallerySrv) Get(ctx context.Context, username string, id uuid.UUID) (*model.MediaItem, error) {
	acct, err := s.account(ctx, username)
	if err != nil {
		return nil, err
	}

	for i := range acct.Media {
		if acct.Media[i].ID == id {
			return &acct.Media[i], nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *gallerySrv) account(ctx context.Context, username string) (*model.Account, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	acct, ok := users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return acct, nil
}
