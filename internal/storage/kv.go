package storage

import (
	"context"
	"fmt"
)

// Backend names accepted in the storage config key.
const (
	BackendFile  = "file"
	BackendBunt  = "bunt"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// KV is a string key-value store.
// Get reports a missing key with ok=false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// OpenKV opens the backend selected by cfg.
func (s *Storage) OpenKV(ctx context.Context, cfg *Config) (KV, error) {
	switch cfg.Storage {
	case BackendFile, "":
		return NewFileKV(s.DataPath())
	case BackendBunt:
		return OpenBuntKV(s.BuntPath())
	case BackendRedis:
		return NewRedisKV(ctx, cfg.RedisURL)
	case BackendMongo:
		return NewMongoKV(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
