package snapshot

import (
	"context"
	"fmt"

	"team-inventory/core/database"
	"team-inventory/core/storage"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings of the redis backend.
type RedisConfig struct {
	Addr      string `mapstructure:"addr" default:"localhost:6379"`
	Password  string `mapstructure:"password" default:""`
	DB        int    `mapstructure:"db" default:"0"`
	KeyPrefix string `mapstructure:"key_prefix" default:"team-inventory"`
}

// Sources carries the connection settings of every backend; Open only uses
// the one matching Config.Backend.
type Sources struct {
	Database database.Config
	Storage  storage.Config
	Redis    RedisConfig
}

// Open connects the configured backend. The returned close function releases
// its connections and is never nil.
func Open(ctx context.Context, cfg Config, src Sources) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), noop, nil

	case BackendDatabase:
		db, err := database.Connect(src.Database)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		store := NewDatabaseStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, noop, err
		}
		return store, sqlDB.Close, nil

	case BackendStorage:
		client, err := storage.NewClient(src.Storage)
		if err != nil {
			return nil, noop, err
		}
		store := NewObjectStore(client, src.Storage.Bucket, cfg.Prefix)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     src.Redis.Addr,
			Password: src.Redis.Password,
			DB:       src.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return NewRedisStore(client, src.Redis.KeyPrefix), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported snapshot backend: %s", cfg.Backend)
	}
}
