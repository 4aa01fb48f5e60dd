package locker

import (
	"context"
	"fmt"

	"github.com/Reeshadali/PG/internal/port"
)

type authSrv struct {
	store port.UserStore
}

// NewAuthenticator constructs an Authenticator over the user store.
func NewAuthenticator(store port.UserStore) port.Authenticator {
	return &authSrv{store: store}
}

// Login succeeds only on an exact, case-sensitive username and password
// match. Failure is always ErrAuthFailed, regardless of cause.
func (s *authSrv) Login(ctx context.Context, in port.LoginInput) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}

	acct, ok := users[in.Username]
	if !ok || acct.Password != in.Password {
		return ErrAuthFailed
	}
	return nil
}
