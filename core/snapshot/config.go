package snapshot

// Backend names accepted by Config.Backend.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendStorage  = "storage"
	BackendRedis    = "redis"
)

// Config selects and tunes the snapshot backend.
type Config struct {
	// Backend is one of memory, database, storage or redis.
	Backend string `mapstructure:"backend" default:"memory"`
	// Prefix is prepended to object names in the storage backend.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendMemory, BackendDatabase, BackendStorage, BackendRedis:
		return true
	default:
		return false
	}
}
