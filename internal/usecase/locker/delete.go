package locker

import (
	"context"
	"fmt"

	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/uuid"
)

type deleteSrv struct {
	store port.UserStore
}

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(store port.UserStore) port.MediaDeleter {
	return &deleteSrv{store: store}
}

// Delete removes the matched item and reclaims its bytes. An identifier not
// present in the account's media changes nothing and returns nil.
func (s *deleteSrv) Delete(ctx context.Context, username string, id uuid.UUID) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	acct, ok := users[username]
	if !ok {
		return ErrUserNotFound
	}

	for i := range acct.Media {
		if acct.Media[i].ID != id {
			continue
		}
		acct.StorageUsed -= acct.Media[i].Size
		acct.Media = append(acct.Media[:i], acct.Media[i+1:]...)
		if err := s.store.Save(ctx, users); err != nil {
			return fmt.Errorf("persisting accounts: %w", err)
		}
		return nil
	}
	return nil
}
