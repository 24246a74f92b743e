// Package database handles the catalog database connection and schema inspection.
//
// It wraps GORM so the item/fluid catalog can live in MySQL for shared deployments or in
// a local SQLite file for previews and tests.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and pings the
// database within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns reads a table's column definitions (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). The catalog integrity check uses it with MissingColumns to
// confirm the catalog tables still match the models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Catalog unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_items")
package database
