package locker

import (
	"context"
	"fmt"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
)

// EnsureSeeded creates the default account when the store is empty or its
// contents were unreadable. It reports whether seeding happened so the
// caller can surface the well-known credentials exactly once.
func EnsureSeeded(ctx context.Context, store port.UserStore) (bool, error) {
	users, err := store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading accounts: %w", err)
	}
	if len(users) > 0 {
		return false, nil
	}

	users[DefaultUsername] = &model.Account{
		Password: DefaultPassword,
		Media:    []model.MediaItem{},
	}
	if err := store.Save(ctx, users); err != nil {
		return false, fmt.Errorf("saving seeded account: %w", err)
	}
	return true, nil
}
