// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/vote-report/models"
)

// Normalizer canonicalizes raw rows into Response values. Candidate cells
// are matched against the roster by id or display name, case- and
// whitespace-insensitively.
type Normalizer struct {
	defs      models.Definitions
	delimiter string
	lookup    map[string]map[string]string // category id -> folded token -> candidate id
}

func NewNormalizer(defs models.Definitions, delimiter string) *Normalizer {
	if delimiter == "" {
		delimiter = ";"
	}
	lookup := make(map[string]map[string]string, len(defs.Categories))
	for _, cat := range defs.Categories {
		tokens := make(map[string]string, 2*len(cat.Candidates))
		for _, cand := range cat.Candidates {
			tokens[fold(cand.ID)] = cand.ID
			tokens[fold(cand.Name)] = cand.ID
		}
		lookup[cat.ID] = tokens
	}
	return &Normalizer{defs: defs, delimiter: delimiter, lookup: lookup}
}

// Normalize converts one raw row into a Response. A missing respondent
// identifier fails the whole row with models.ErrStructuralRow; category-level
// issues degrade to "no vote recorded" and are returned as warnings.
func (n *Normalizer) Normalize(row models.RawRow) (models.Response, []models.Warning, error) {
	respondent := strings.TrimSpace(row.Cells[n.defs.RespondentColumn])
	if respondent == "" {
		return models.Response{}, nil, fmt.Errorf(
			"row %d: missing %q: %w", row.Line, n.defs.RespondentColumn, models.ErrStructuralRow)
	}

	resp := models.Response{
		RespondentID: respondent,
		Selections:   make(map[string][]string, len(n.defs.Categories)),
	}
	var warnings []models.Warning

	for _, cat := range n.defs.Categories {
		cell := strings.TrimSpace(row.Cells[cat.Column])
		if cell == "" {
			continue // no vote for this category
		}

		var ids []string
		seen := make(map[string]bool)
		for _, part := range strings.Split(cell, n.delimiter) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, ok := n.lookup[cat.ID][fold(part)]
			if !ok {
				warnings = append(warnings, models.Warning{
					Category: cat.ID,
					Row:      row.Line,
					Reason:   fmt.Sprintf("unknown candidate %q", part),
				})
				continue
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}

		if len(ids) == 0 {
			continue
		}
		if cat.MaxSelections > 0 && len(ids) > cat.MaxSelections {
			warnings = append(warnings, models.Warning{
				Category: cat.ID,
				Row:      row.Line,
				Reason:   fmt.Sprintf("%d selections exceed maximum %d", len(ids), cat.MaxSelections),
			})
			continue
		}
		if len(ids) < cat.MinSelections {
			warnings = append(warnings, models.Warning{
				Category: cat.ID,
				Row:      row.Line,
				Reason:   fmt.Sprintf("%d selections below minimum %d", len(ids), cat.MinSelections),
			})
			continue
		}
		resp.Selections[cat.ID] = ids
	}

	return resp, warnings, nil
}

// fold collapses case and runs of whitespace for candidate matching.
func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
