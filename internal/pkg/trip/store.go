package trip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// BlobStore holds one serialized trip result per key.
type BlobStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// FileStore keeps each key in <Dir>/cache-<key>.json.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) Path(key string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("cache-%s.json", key))
}

func (s *FileStore) Read(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(s.Path(key))
}

func (s *FileStore) Write(_ context.Context, key string, data []byte) error {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	if err := os.WriteFile(s.Path(key), data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps each key under trip:cache:<key> without expiration.
type RedisStore struct {
	redis RedisClient
}

func NewRedisStore(redis RedisClient) *RedisStore {
	return &RedisStore{
		redis: redis,
	}
}

func (s *RedisStore) GetCacheKey(key string) string {
	return fmt.Sprintf("trip:cache:%s", key)
}

func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	return s.redis.Get(ctx, s.GetCacheKey(key)).Bytes()
}

func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.redis.Set(ctx, s.GetCacheKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set trip result: %w", err)
	}

	return nil
}
