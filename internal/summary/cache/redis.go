package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "resume-matcher:summary"
	clearScanCount   = 100
)

// RedisStore keeps summaries as plain string values without expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore checks connectivity and returns a store writing under prefix.
func NewRedisStore(ctx context.Context, client redis.UniversalClient, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix = strings.TrimRight(strings.TrimSpace(prefix), ":"); prefix == "" {
		prefix = defaultKeyPrefix
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) key(jdID, resume string) string {
	return s.prefix + ":" + Key(jdID, resume)
}

func (s *RedisStore) Get(ctx context.Context, jdID, resume string) (string, error) {
	value, err := s.client.Get(ctx, s.key(jdID, resume)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get cached summary: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Put(ctx context.Context, jdID, resume, summary string) error {
	if err := s.client.Set(ctx, s.key(jdID, resume), summary, 0).Err(); err != nil {
		return fmt.Errorf("set cached summary: %w", err)
	}
	return nil
}

// Clear deletes every key under the store prefix.
func (s *RedisStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+":*", clearScanCount).Iterator()

	batch := make([]string, 0, clearScanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearScanCount {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("delete cached summaries: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached summaries: %w", err)
	}

	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("delete cached summaries: %w", err)
		}
	}
	return nil
}
