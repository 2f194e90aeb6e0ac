// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/vote-report/models"
)

// LoadDefinitions reads and validates the category definitions file.
// JSON and YAML are supported, chosen by extension.
func LoadDefinitions(path string) (models.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Definitions{}, fmt.Errorf("failed to read definitions: %w", err)
	}

	var defs models.Definitions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &defs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &defs)
	default:
		return models.Definitions{}, fmt.Errorf("unsupported definitions format: %s", path)
	}
	if err != nil {
		return models.Definitions{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := validateDefinitions(defs); err != nil {
		return models.Definitions{}, fmt.Errorf("invalid definitions in %s: %w", path, err)
	}

	slog.Info("definitions loaded", "path", path, "categories", len(defs.Categories))
	return defs, nil
}

func validateDefinitions(defs models.Definitions) error {
	if defs.RespondentColumn == "" {
		return fmt.Errorf("respondent_column is required")
	}
	if len(defs.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	catIDs := make(map[string]bool, len(defs.Categories))
	for _, cat := range defs.Categories {
		if cat.ID == "" || cat.Name == "" || cat.Column == "" {
			return fmt.Errorf("category %q: id, name, and column are required", cat.ID)
		}
		if catIDs[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		catIDs[cat.ID] = true

		if cat.MinSelections < 0 {
			return fmt.Errorf("category %q: min_selections must not be negative", cat.ID)
		}
		if cat.MaxSelections > 0 && cat.MinSelections > cat.MaxSelections {
			return fmt.Errorf("category %q: min_selections exceeds max_selections", cat.ID)
		}
		if len(cat.Candidates) == 0 {
			return fmt.Errorf("category %q: candidate roster is empty", cat.ID)
		}

		candIDs := make(map[string]bool, len(cat.Candidates))
		for _, cand := range cat.Candidates {
			if cand.ID == "" || cand.Name == "" {
				return fmt.Errorf("category %q: candidate id and name are required", cat.ID)
			}
			if candIDs[cand.ID] {
				return fmt.Errorf("category %q: duplicate candidate id %q", cat.ID, cand.ID)
			}
			candIDs[cand.ID] = true
		}
	}

	return nil
}
