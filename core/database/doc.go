// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a ping bounded by the configured timeout. The database is
// optional for the service: callers log the error and continue without
// persistence.
//
// # Schema Inspection
//
// GetTableColumns and ColumnTypes read the live schema of a table. The integrity
// feature compares them against the inventory models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "base_sets")
package database
