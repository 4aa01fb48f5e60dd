package locker

import (
	"context"
	"fmt"
	"sort"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
)

type adminSrv struct {
	store port.UserStore
}

// NewAccountAdmin constructs the administrative service. It talks straight
// to the store and persists after every mutation.
func NewAccountAdmin(store port.UserStore) port.AccountAdmin {
	return &adminSrv{store: store}
}

func (s *adminSrv) CreateUser(ctx context.Context, username, password string) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	if _, exists := users[username]; exists {
		return ErrUserExists
	}

	users[username] = &model.Account{
		Password: password,
		Media:    []model.MediaItem{},
	}
	if err := s.store.Save(ctx, users); err != nil {
		return fmt.Errorf("persisting accounts: %w", err)
	}
	return nil
}

func (s *adminSrv) ListUsers(ctx context.Context) ([]string, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *adminSrv) DeleteUser(ctx context.Context, username string) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}
	if _, exists := users[username]; !exists {
		return ErrUserNotFound
	}

	delete(users, username)
	if err := s.store.Save(ctx, users); err != nil {
		return fmt.Errorf("persisting accounts: %w", err)
	}
	return nil
}
