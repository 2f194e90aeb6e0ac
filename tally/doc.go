// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally is the vote aggregation and ranking core.

# Pipeline

Raw rows flow through four stages, driven by Run:

	rows → Normalizer → Responses → Accumulator → sealed tallies → Rank → Assemble → Report

	report, err := tally.Run(defs, rows, tally.Options{
		Delimiter: ";",
		SortKey:   tally.KeyForLocale("pinyin"),
	})

The pipeline is single-threaded and makes one bounded pass over the rows.
The Accumulator exclusively owns the count maps until Seal, after which they
are read-only.

# Normalization

Normalize matches cell tokens against the category roster by candidate id or
display name (case- and whitespace-folded) and splits multi-select cells on
the configured delimiter. A row without a respondent identifier fails with
models.ErrStructuralRow and is counted as rejected; unknown candidates and
selection-bound violations degrade to warnings and the rest of the row still
counts.

# Counting

Counts are per (category, candidate); valid responses are counted per
category separately, because multi-select categories make "sum of candidate
counts" diverge from "number of respondents". A candidate selected twice in
one response counts once. Seal verifies that single-choice categories never
tally more votes than valid responses (models.ErrConsistency otherwise).

# Ranking

Rank emits the complete roster in competition-rank order: counts [10,10,7]
produce ranks [1,1,3]. Tied candidates share a rank; their display order is
fixed by a pluggable SortKeyFunc (pinyin transliteration, x/text collation,
or case folding) and finally by candidate id. A category with zero valid
responses yields an all-zero roster, every entry rank 1, percent exactly 0.

Percentages are count / valid responses for the category, for single- and
multi-select categories alike.
*/
package tally
