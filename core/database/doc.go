// Package database handles the MySQL connection for the upload ledger.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes and pings the connection. The database is
// optional: when it is unreachable at startup the service still runs, it just
// skips recording upload metadata.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", err)
//	}
package database
