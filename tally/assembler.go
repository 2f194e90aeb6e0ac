// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/vote-report/models"
)

// Assemble composes the per-category rankings and global counters into the
// final Report. Categories appear in definition order, never discovery
// order, so the output is identical regardless of input row ordering.
// The returned value is never mutated afterwards.
func Assemble(defs models.Definitions, tallies map[string]*CategoryTally,
	rankings map[string][]models.RankedEntry, summary models.Summary) models.Report {

	report := models.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Categories:  make([]models.CategoryResult, 0, len(defs.Categories)),
	}

	for _, cat := range defs.Categories {
		report.Categories = append(report.Categories, models.CategoryResult{
			CategoryID:     cat.ID,
			Name:           cat.Name,
			ValidResponses: tallies[cat.ID].Valid,
			Entries:        rankings[cat.ID],
		})
	}

	return report
}
