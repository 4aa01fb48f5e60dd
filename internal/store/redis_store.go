package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/redis/go-redis/v9"
)

// usersKey is the single key holding the serialized username → account
// mapping, for both store implementations.
const usersKey = "mediaAppUsers"

// RedisStore keeps the whole user mapping as one JSON document under a
// single Redis key.
type RedisStore struct {
	client *redis.Client
}

// compile-time check: *RedisStore must satisfy port.UserStore
var _ port.UserStore = (*RedisStore)(nil)

func NewRedisStore(addr, password string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisStore{client: rdb}
}

func (s *RedisStore) Load(ctx context.Context) (map[string]*model.Account, error) {
	val, err := s.client.Get(ctx, usersKey).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]*model.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	users := map[string]*model.Account{}
	if err := json.Unmarshal([]byte(val), &users); err != nil {
		// Unreadable stored data is treated as no data at all.
		log.Printf("stored user data is unreadable, starting empty: %v", err)
		return map[string]*model.Account{}, nil
	}
	return users, nil
}

func (s *RedisStore) Save(ctx context.Context, users map[string]*model.Account) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if err := s.client.Set(ctx, usersKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
