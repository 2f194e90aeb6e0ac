// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"

	"github.com/danielhkuo/vote-report/models"
)

// CategoryTally holds the sealed counting state for one category.
// Valid counts responses, not selections; with multi-select categories
// the candidate counts can legitimately sum past it.
type CategoryTally struct {
	Counts map[string]int
	Valid  int
}

// Accumulator folds Responses into per-category counts. It owns all
// mutable tally state for the run; Seal freezes it before ranking.
type Accumulator struct {
	defs        models.Definitions
	byCategory  map[string]*CategoryTally
	respondents int
	rejected    int
	warnings    []models.Warning
	sealed      bool
}

func NewAccumulator(defs models.Definitions) *Accumulator {
	byCategory := make(map[string]*CategoryTally, len(defs.Categories))
	for _, cat := range defs.Categories {
		byCategory[cat.ID] = &CategoryTally{Counts: make(map[string]int, len(cat.Candidates))}
	}
	return &Accumulator{defs: defs, byCategory: byCategory}
}

// Add folds one normalized response into the tallies. A candidate listed
// twice in one response counts once.
func (a *Accumulator) Add(resp models.Response) {
	if a.sealed {
		panic("tally: Add after Seal")
	}
	a.respondents++
	for _, cat := range a.defs.Categories {
		ids := resp.Selections[cat.ID]
		if len(ids) == 0 {
			continue
		}
		t := a.byCategory[cat.ID]
		t.Valid++
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			t.Counts[id]++
		}
	}
}

// RecordRejection counts a structurally invalid row.
func (a *Accumulator) RecordRejection() {
	a.rejected++
}

// RecordWarnings counts recovered normalization issues.
func (a *Accumulator) RecordWarnings(ws ...models.Warning) {
	a.warnings = append(a.warnings, ws...)
}

func (a *Accumulator) Respondents() int           { return a.respondents }
func (a *Accumulator) Rejected() int              { return a.rejected }
func (a *Accumulator) Warnings() []models.Warning { return a.warnings }

// Seal freezes the tallies and verifies the count-conservation invariant:
// in a single-choice category the candidate counts can never sum past the
// valid response total. A violation means a normalizer defect upstream and
// aborts the run with models.ErrConsistency.
func (a *Accumulator) Seal() (map[string]*CategoryTally, error) {
	a.sealed = true
	for _, cat := range a.defs.Categories {
		if !cat.SingleChoice() {
			continue
		}
		t := a.byCategory[cat.ID]
		sum := 0
		for _, c := range t.Counts {
			sum += c
		}
		if sum > t.Valid {
			return nil, fmt.Errorf(
				"category %s: %d votes across %d valid responses: %w",
				cat.ID, sum, t.Valid, models.ErrConsistency)
		}
	}
	return a.byCategory, nil
}
