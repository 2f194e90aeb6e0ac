// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/vote-report/models"
)

// SaveReport archives one run. The full Report is stored as a JSON payload
// next to the summary columns, so archived runs decode back into the exact
// structure the writers consumed.
func SaveReport(dbc *sql.DB, rep models.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report payload: %w", err)
	}

	_, err = dbc.Exec(`
		INSERT INTO report_run (id, generated_at, total_respondents, rejected_rows, warnings, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rep.RunID, rep.GeneratedAt, rep.Summary.TotalRespondents,
		rep.Summary.RejectedRows, rep.Summary.Warnings, string(payload))
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}

	slog.Info("report archived", "run_id", rep.RunID)
	return nil
}

// LoadReport restores an archived Report by run id.
func LoadReport(dbc *sql.DB, runID string) (models.Report, error) {
	var payload []byte
	err := dbc.QueryRow(`
		SELECT payload FROM report_run WHERE id = $1
	`, runID).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Report{}, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to load report: %w", err)
	}

	var rep models.Report
	if err := json.Unmarshal(payload, &rep); err != nil {
		return models.Report{}, fmt.Errorf("failed to decode report payload: %w", err)
	}
	return rep, nil
}
