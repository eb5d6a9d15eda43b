// Package database opens the relational database used by the database
// snapshot backend.
//
// Connect wraps GORM and supports two drivers: MySQL for deployments and
// SQLite for local runs and tests (":memory:" gives a throwaway database).
// Connections are verified with a ping bounded by the configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
