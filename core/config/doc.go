// Package config provides configuration management for the team inventory
// service.
//
// Settings come from environment variables, optionally seeded from a .env
// file. Every field carries a `default` tag which is registered with Viper so
// that AutomaticEnv can resolve nested keys (PERSISTENCE_BACKEND ->
// persistence.backend).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and body limit
//   - Log: level and format
//   - Persistence: snapshot backend (memory, database, storage, redis)
//   - Database, Storage, Redis: backend connection settings
//   - Events: Kafka brokers and topic
//   - Roster: locale used to order players
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
