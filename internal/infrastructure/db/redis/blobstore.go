package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the four core blobs inside a possibly shared database.
const keyPrefix = "novafin:"

// BlobStore adapts a Redis client to the core's key/value contract. Each blob
// lives in a single string key, read and written whole.
type BlobStore struct {
	client *redis.Client
}

// NewBlobStore wraps the given Redis client.
func NewBlobStore(client *redis.Client) *BlobStore {
	return &BlobStore{client: client}
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("blob get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("blob set %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("blob remove %s: %w", key, err)
	}
	return nil
}

// Ping reports store health for the readiness probe.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
