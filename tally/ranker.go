// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/vote-report/models"
)

// Rank orders one category's tallies into ranked entries.
//
// The full roster always appears, unvoted candidates included with count 0.
// Primary order is descending count; entries with equal counts share a rank
// (competition ranking: counts [10,10,7] rank [1,1,3]). Within a tie group
// the locale sort key, then the candidate id, fix the display order only.
func Rank(cat models.Category, t CategoryTally, key SortKeyFunc) []models.RankedEntry {
	type keyed struct {
		models.TallyEntry
		sortKey string
	}

	entries := make([]keyed, 0, len(cat.Candidates))
	for _, cand := range cat.Candidates {
		count := t.Counts[cand.ID]
		percent := 0.0
		if t.Valid > 0 {
			percent = 100 * float64(count) / float64(t.Valid)
		}
		entries = append(entries, keyed{
			TallyEntry: models.TallyEntry{
				CandidateID: cand.ID,
				Name:        cand.Name,
				Count:       count,
				Percent:     percent,
			},
			sortKey: key(cand.Name),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		// 1. Higher count wins
		if a.Count != b.Count {
			return a.Count > b.Count
		}

		// 2. Locale sort key fixes display order inside tie groups
		if a.sortKey != b.sortKey {
			return a.sortKey < b.sortKey
		}

		// 3. Stable tie-breaking by candidate id (ascending)
		return a.CandidateID < b.CandidateID
	})

	ranked := make([]models.RankedEntry, len(entries))
	rank := 0
	for i, e := range entries {
		if i == 0 || e.Count != entries[i-1].Count {
			rank = i + 1
		}
		ranked[i] = models.RankedEntry{
			CandidateID: e.CandidateID,
			Name:        e.Name,
			Count:       e.Count,
			Percent:     e.Percent,
			Rank:        rank,
		}
	}

	return ranked
}
