package database

import "fmt"

const schema = `
CREATE TABLE IF NOT EXISTS processing_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	platform TEXT NOT NULL,
	auto_detected INTEGER NOT NULL DEFAULT 0,
	confidence REAL NOT NULL DEFAULT 0,
	item_count INTEGER NOT NULL DEFAULT 0,
	order_count INTEGER NOT NULL DEFAULT 0,
	warning_count INTEGER NOT NULL DEFAULT 0,
	error_count INTEGER NOT NULL DEFAULT 0,
	report_path TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_processing_runs_created_at
	ON processing_runs (created_at DESC);
`

// Bootstrap creates the schema if it does not exist. Safe to call on every
// start.
func (db *DB) Bootstrap() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	db.logger.Info("Database schema ready")
	return nil
}
