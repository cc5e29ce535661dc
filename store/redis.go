// Package store provides transcript store backends beyond the
// in-memory default.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTranscriptStore implements botsdk.TranscriptStore on Redis
// lists. Keys are namespaced as "{prefix}:{namespace}:list:{key}".
type RedisTranscriptStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

// RedisStoreConfig configures the Redis store.
type RedisStoreConfig struct {
	Prefix string        // key prefix, default "transcript"
	TTL    time.Duration // expiry refreshed on every append, 0 = no expiry
}

// NewRedisTranscriptStore creates a transcript store backed by Redis.
// Works with a go-redis Client, ClusterClient, or Ring.
func NewRedisTranscriptStore(client redis.UniversalClient, config ...RedisStoreConfig) *RedisTranscriptStore {
	cfg := RedisStoreConfig{Prefix: "transcript"}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Prefix == "" {
			cfg.Prefix = "transcript"
		}
	}
	return &RedisTranscriptStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (s *RedisTranscriptStore) listKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:list:%s", s.prefix, namespace, key)
}

func (s *RedisTranscriptStore) Append(namespace, key, value string) error {
	k := s.listKey(namespace, key)
	if err := s.client.RPush(s.ctx, k, value).Err(); err != nil {
		return fmt.Errorf("redis rpush %s: %w", k, err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(s.ctx, k, s.ttl).Err(); err != nil {
			return fmt.Errorf("redis expire %s: %w", k, err)
		}
	}
	return nil
}

func (s *RedisTranscriptStore) GetList(namespace, key string, limit, offset int) ([]string, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}
	items, err := s.client.LRange(s.ctx, s.listKey(namespace, key), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	return items, nil
}

func (s *RedisTranscriptStore) ClearList(namespace, key string) error {
	if err := s.client.Del(s.ctx, s.listKey(namespace, key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisTranscriptStore) ListLength(namespace, key string) (int, error) {
	n, err := s.client.LLen(s.ctx, s.listKey(namespace, key)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis llen: %w", err)
	}
	return int(n), nil
}

// Close releases the underlying client.
func (s *RedisTranscriptStore) Close() error {
	return s.client.Close()
}
