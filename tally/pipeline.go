// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"log/slog"

	"github.com/danielhkuo/vote-report/models"
)

// Options configures a pipeline run.
type Options struct {
	// Delimiter separates multiple selections within one cell (default ";").
	Delimiter string
	// SortKey orders tied candidates for display (default FoldKey).
	SortKey SortKeyFunc
}

// Run drives the full pipeline: normalize each row, fold into tallies,
// seal, rank every category, and assemble the Report. Rejected rows and
// warnings are counted into the summary; only a consistency violation
// returns an error.
func Run(defs models.Definitions, rows []models.RawRow, opts Options) (models.Report, error) {
	if opts.SortKey == nil {
		opts.SortKey = FoldKey()
	}

	normalizer := NewNormalizer(defs, opts.Delimiter)
	acc := NewAccumulator(defs)

	for _, row := range rows {
		resp, warnings, err := normalizer.Normalize(row)
		if err != nil {
			slog.Warn("row rejected", "row", row.Line, "error", err)
			acc.RecordRejection()
			continue
		}
		for _, w := range warnings {
			slog.Debug("normalization warning", "row", w.Row, "category", w.Category, "reason", w.Reason)
		}
		acc.RecordWarnings(warnings...)
		acc.Add(resp)
	}

	tallies, err := acc.Seal()
	if err != nil {
		return models.Report{}, err
	}

	rankings := make(map[string][]models.RankedEntry, len(defs.Categories))
	for _, cat := range defs.Categories {
		rankings[cat.ID] = Rank(cat, *tallies[cat.ID], opts.SortKey)
	}

	summary := models.Summary{
		TotalRespondents: acc.Respondents(),
		RejectedRows:     acc.Rejected(),
		Warnings:         len(acc.Warnings()),
	}

	slog.Info("tally complete",
		"respondents", summary.TotalRespondents,
		"rejected", summary.RejectedRows,
		"warnings", summary.Warnings,
		"categories", len(defs.Categories),
	)

	return Assemble(defs, tallies, rankings, summary), nil
}
