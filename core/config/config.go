package config

import (
	"reflect"
	"strings"

	"team-inventory/core/database"
	"team-inventory/core/events"
	"team-inventory/core/logger"
	"team-inventory/core/roster"
	"team-inventory/core/server"
	"team-inventory/core/snapshot"
	"team-inventory/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Persistence selects where snapshots are kept.
	Persistence snapshot.Config `mapstructure:"persistence"`
	// Database holds configuration for the database snapshot backend.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage snapshot backend.
	Storage storage.Config `mapstructure:"storage"`
	// Redis holds configuration for the redis snapshot backend.
	Redis snapshot.RedisConfig `mapstructure:"redis"`
	// Events holds the Kafka publisher settings.
	Events events.Config `mapstructure:"events"`
	// Roster holds roster ordering settings.
	Roster roster.Config `mapstructure:"roster"`
}

// Sources returns the backend connection settings for snapshot.Open.
func (c *Config) Sources() snapshot.Sources {
	return snapshot.Sources{
		Database: c.Database,
		Storage:  c.Storage,
		Redis:    c.Redis,
	}
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
