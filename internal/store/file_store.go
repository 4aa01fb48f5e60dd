package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
)

// FileStore persists the user mapping as one JSON file on disk. It is the
// fallback when Redis is not configured, so the locker runs with zero
// external services.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// compile-time check: *FileStore must satisfy port.UserStore
var _ port.UserStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (map[string]*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]*model.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	users := map[string]*model.Account{}
	if err := json.Unmarshal(data, &users); err != nil {
		// Unreadable stored data is treated as no data at all.
		log.Printf("stored user data is unreadable, starting empty: %v", err)
		return map[string]*model.Account{}, nil
	}
	return users, nil
}

func (s *FileStore) Save(ctx context.Context, users map[string]*model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Write to a sibling temp file, then rename, so a crash mid-write never
	// leaves a truncated mapping behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
