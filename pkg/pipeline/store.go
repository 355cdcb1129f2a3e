package pipeline

import (
	"github.com/redis/go-redis/v9"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/catalog"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/fallback"
)

// StoreFromConfig builds the fallback store the configuration selects: a
// Redis-backed store when an address is configured, otherwise a JSON file
// store.
func StoreFromConfig(fc catalog.FallbackConfig) (fallback.Store, error) {
	if fc.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: fc.RedisAddr})
		return fallback.NewRedisStore(client, fc.RedisKey)
	}
	return fallback.NewFileStore(fc.Path)
}
