package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
)

// RedisStore keeps sessions in Redis so several instances can share them.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store that namespaces keys as "<prefix>:<id>".
// Trailing colons on prefix are dropped.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	prefix = strings.TrimRight(prefix, ":")
	if prefix == "" {
		prefix = "sess"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + ":" + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	key := r.key(id)
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to read session", "key", key, "error", err)
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, err
	}
	s.ID = id
	return &s, nil
}

func (r *RedisStore) Set(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	key := r.key(s.ID)
	err = r.client.Set(ctx, key, data, ttl).Err()
	logger.Log.Debugw("session stored", "key", key, "ttl", ttl, "error", err)
	return err
}

func (r *RedisStore) Destroy(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}
