package port

import (
	"context"

	"github.com/Reeshadali/PG/internal/model"
)

// UserStore persists the full username → account mapping as a single
// serialized document. There are no partial writes: every Save rewrites the
// whole mapping, and concurrent writers resolve by last-write-wins.
type UserStore interface {
	Load(ctx context.Context) (map[string]*model.Account, error)
	Save(ctx context.Context, users map[string]*model.Account) error
}
