// Package database handles database connections and schema bootstrap.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// Connect establishes and verifies a pooled MySQL connection. The DSN enables
// parseTime so DATETIME columns scan as time.Time, and pins the session to
// UTC, matching the timestamps the API writes.
//
// # Migration
//
// Migrate creates the posts, comments and users tables if they do not exist.
// It runs through the store adapter, so the migrate CLI command exercises the
// same statement path as the resource services.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	tables, err := database.Migrate(ctx, st)
package database
