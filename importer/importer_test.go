// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestReadRowsCSV(t *testing.T) {
	path := writeFile(t, "answers.csv",
		"username,Best Work,Fan Favorites\n"+
			"alice,Aurora,Xenon; Zephyr\n"+
			"bob,Borealis\n") // ragged row

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("Expected file lines 2 and 3, got %d and %d", rows[0].Line, rows[1].Line)
	}
	if rows[0].Cells["username"] != "alice" || rows[0].Cells["Best Work"] != "Aurora" {
		t.Errorf("Unexpected first row: %v", rows[0].Cells)
	}

	// Short rows are padded so every header key resolves
	if got, ok := rows[1].Cells["Fan Favorites"]; !ok || got != "" {
		t.Errorf("Expected padded empty cell, got %q (present=%v)", got, ok)
	}
}

func TestReadRowsUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "answers.txt", "whatever")
	if _, err := ReadRows(path); err == nil {
		t.Fatal("Expected error for unsupported file type")
	}
}

func TestReadRowsEmptyFile(t *testing.T) {
	path := writeFile(t, "answers.csv", "")
	if _, err := ReadRows(path); err == nil {
		t.Fatal("Expected error for file without header row")
	}
}

const definitionsJSON = `{
  "respondent_column": "username",
  "categories": [
    {
      "id": "best-work",
      "name": "Best Work",
      "column": "Best Work",
      "max_selections": 1,
      "candidates": [
        {"id": "a", "name": "Aurora"},
        {"id": "b", "name": "Borealis"}
      ]
    }
  ]
}`

const definitionsYAML = `respondent_column: username
categories:
  - id: best-work
    name: Best Work
    column: Best Work
    max_selections: 1
    candidates:
      - id: a
        name: Aurora
      - id: b
        name: Borealis
`

func TestLoadDefinitionsJSON(t *testing.T) {
	path := writeFile(t, "categories.json", definitionsJSON)

	defs, err := LoadDefinitions(path)
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}
	if defs.RespondentColumn != "username" {
		t.Errorf("Unexpected respondent column: %q", defs.RespondentColumn)
	}
	if len(defs.Categories) != 1 || len(defs.Categories[0].Candidates) != 2 {
		t.Fatalf("Unexpected definitions: %+v", defs)
	}
	if !defs.Categories[0].SingleChoice() {
		t.Error("Expected single-choice category")
	}
}

func TestLoadDefinitionsYAML(t *testing.T) {
	jsonDefs, err := LoadDefinitions(writeFile(t, "categories.json", definitionsJSON))
	if err != nil {
		t.Fatalf("LoadDefinitions(json) failed: %v", err)
	}
	yamlDefs, err := LoadDefinitions(writeFile(t, "categories.yaml", definitionsYAML))
	if err != nil {
		t.Fatalf("LoadDefinitions(yaml) failed: %v", err)
	}

	if yamlDefs.RespondentColumn != jsonDefs.RespondentColumn ||
		len(yamlDefs.Categories) != len(jsonDefs.Categories) ||
		yamlDefs.Categories[0].ID != jsonDefs.Categories[0].ID ||
		len(yamlDefs.Categories[0].Candidates) != len(jsonDefs.Categories[0].Candidates) {
		t.Errorf("JSON and YAML definitions disagree:\njson: %+v\nyaml: %+v", jsonDefs, yamlDefs)
	}
}

func TestLoadDefinitionsValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing respondent column",
			`{"categories": [{"id": "x", "name": "X", "column": "X", "candidates": [{"id": "a", "name": "A"}]}]}`,
			"respondent_column",
		},
		{
			"no categories",
			`{"respondent_column": "u", "categories": []}`,
			"at least one category",
		},
		{
			"duplicate category ids",
			`{"respondent_column": "u", "categories": [
				{"id": "x", "name": "X", "column": "X", "candidates": [{"id": "a", "name": "A"}]},
				{"id": "x", "name": "X2", "column": "X2", "candidates": [{"id": "a", "name": "A"}]}
			]}`,
			"duplicate category id",
		},
		{
			"empty roster",
			`{"respondent_column": "u", "categories": [{"id": "x", "name": "X", "column": "X", "candidates": []}]}`,
			"roster is empty",
		},
		{
			"duplicate candidate ids",
			`{"respondent_column": "u", "categories": [{"id": "x", "name": "X", "column": "X",
				"candidates": [{"id": "a", "name": "A"}, {"id": "a", "name": "B"}]}]}`,
			"duplicate candidate id",
		},
		{
			"bounds inverted",
			`{"respondent_column": "u", "categories": [{"id": "x", "name": "X", "column": "X",
				"min_selections": 3, "max_selections": 1, "candidates": [{"id": "a", "name": "A"}]}]}`,
			"min_selections exceeds",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tc.content)
			_, err := LoadDefinitions(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
