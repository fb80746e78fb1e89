package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/usecase/interfaces"
)

// redisClient is the subset of *redis.Client the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ redisClient = (*redis.Client)(nil)

// RedisStore keeps sessions as JSON under "simulation:<id>" so any API
// replica can serve a session. Every save refreshes the TTL.
type RedisStore struct {
	rdb redisClient
	ttl time.Duration
}

var _ interfaces.ISessionStore = (*RedisStore)(nil)

func NewRedisStore(rdb redisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient parses REDIS_URL and pings the server.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, st budget.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", sessionID, err)
	}
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), data, ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (budget.State, bool, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return budget.State{}, false, nil
	}
	if err != nil {
		return budget.State{}, false, err
	}
	var st budget.State
	if err := json.Unmarshal(data, &st); err != nil {
		return budget.State{}, false, fmt.Errorf("decoding session %s: %w", sessionID, err)
	}
	return st, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(id string) string { return fmt.Sprintf("simulation:%s", id) }
