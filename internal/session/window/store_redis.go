package window

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shinobidex/fichas-api/internal/platform/constants"
)

// RedisStore implements Store as one TTL'd JSON blob per session.
//
// The arrangement is pure convenience state; expiry just means the next
// visit starts with every window closed.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) key(sessionID string) string {
	return constants.RedisPrefixWindows + sessionID
}

func (store *RedisStore) Load(context context.Context, sessionID string) (*State, error) {
	payload, err := store.client.Get(context, store.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("redis_window_state_get_failed: %w", err)
	}

	state := NewState()
	if err := json.Unmarshal(payload, state); err != nil {
		// A corrupt blob is unrecoverable session fluff; start clean.
		return NewState(), nil
	}
	return state, nil
}

func (store *RedisStore) Save(context context.Context, sessionID string, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redis_window_state_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, store.key(sessionID), payload, constants.SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_window_state_set_failed: %w", err)
	}
	return nil
}
