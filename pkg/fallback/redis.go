package fallback

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
)

// DefaultRedisKey is the key the record lives under when none is configured.
const DefaultRedisKey = "bitbybit:fallback_blueprint"

// RedisStore persists the fallback record under a single Redis key with no
// TTL: the record stays valid until the next successful run overwrites it.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store. The client is required; an
// empty key falls back to DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New(errors.ErrCodeStore, "redis client is required")
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load reads the record, or ErrNotFound when the key is absent.
func (s *RedisStore) Load(ctx context.Context) (*blueprint.Blueprint, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read fallback record from redis key %s", s.key)
	}
	return blueprint.Decode(strings.NewReader(val))
}

// Save overwrites the record.
func (s *RedisStore) Save(ctx context.Context, b *blueprint.Blueprint) error {
	var buf strings.Builder
	if err := blueprint.Encode(b, &buf); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, buf.String(), 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write fallback record to redis key %s", s.key)
	}
	return nil
}

// Clear deletes the record. Clearing an absent key is not an error.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete fallback record at redis key %s", s.key)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
