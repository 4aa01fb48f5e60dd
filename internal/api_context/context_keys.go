package api_context

import (
	"context"

	"github.com/Reeshadali/PG/internal/uuid"
)

type ctxKey string

const (
	ItemIDKey   ctxKey = "itemID"
	AuthUserKey ctxKey = "authUser"
)

func ItemIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ItemIDKey).(uuid.UUID)
	return id, ok
}

func AuthUserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(AuthUserKey).(string)
	return username, ok
}
