// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/vote-report/models"
)

// SampleDefinitions returns the reference data most tests share: one
// single-choice category and one multi-select category.
func SampleDefinitions() models.Definitions {
	return models.Definitions{
		RespondentColumn: "username",
		Categories: []models.Category{
			{
				ID:            "best-work",
				Name:          "Best Work",
				Column:        "Best Work",
				MinSelections: 0,
				MaxSelections: 1,
				Candidates: []models.Candidate{
					{ID: "a", Name: "Aurora"},
					{ID: "b", Name: "Borealis"},
					{ID: "c", Name: "Cascade"},
				},
			},
			{
				ID:            "fan-favorites",
				Name:          "Fan Favorites",
				Column:        "Fan Favorites",
				MinSelections: 0,
				MaxSelections: 2,
				Candidates: []models.Candidate{
					{ID: "x", Name: "Xenon"},
					{ID: "y", Name: "Yonder"},
					{ID: "z", Name: "Zephyr"},
				},
			},
		},
	}
}

// Row builds a RawRow with the respondent column filled in.
func Row(line int, username string, cells map[string]string) models.RawRow {
	all := map[string]string{"username": username}
	for k, v := range cells {
		all[k] = v
	}
	return models.RawRow{Line: line, Cells: all}
}

// SetupTestDB opens an in-memory sqlite database for archive tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// In-memory sqlite lives per connection
	conn.SetMaxOpenConns(1)

	t.Cleanup(func() { conn.Close() })
	return conn
}
