package edit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/constants"
)

// RedisStore implements Store as one TTL'd JSON blob per session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) key(sessionID string) string {
	return constants.RedisPrefixEdit + sessionID
}

func (store *RedisStore) Load(context context.Context, sessionID string) (*Session, error) {
	payload, err := store.client.Get(context, store.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Edit session")
		}
		return nil, fmt.Errorf("redis_edit_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_edit_session_unmarshal_failed: %w", err)
	}
	return session, nil
}

func (store *RedisStore) Save(context context.Context, sessionID string, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_edit_session_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, store.key(sessionID), payload, constants.SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_edit_session_set_failed: %w", err)
	}
	return nil
}

func (store *RedisStore) Delete(context context.Context, sessionID string) error {
	if err := store.client.Del(context, store.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_edit_session_delete_failed: %w", err)
	}
	return nil
}
