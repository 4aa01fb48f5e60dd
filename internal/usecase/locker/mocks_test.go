package locker

import (
	"context"

	"github.com/Reeshadali/PG/internal/model"
)

type mockStore struct {
	users map[string]*model.Account

	loadErr error
	saveErr error

	loadCalled bool
	saveCalls  int
	saved      map[string]*model.Account
}

func (m *mockStore) Load(ctx context.Context) (map[string]*model.Account, error) {
	m.loadCalled = true
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.users == nil {
		m.users = map[string]*model.Account{}
	}
	return m.users, nil
}

func (m *mockStore) Save(ctx context.Context, users map[string]*model.Account) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = users
	return nil
}
