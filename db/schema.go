// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the run archive table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Archived report runs
CREATE TABLE IF NOT EXISTS report_run (
    id TEXT PRIMARY KEY,
    generated_at TIMESTAMP NOT NULL,
    total_respondents INTEGER NOT NULL,
    rejected_rows INTEGER NOT NULL,
    warnings INTEGER NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_report_run_generated_at ON report_run(generated_at);
`
