// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines input, domain, and report types shared across the pipeline.

# Input Types

  - RawRow: one spreadsheet row as header-keyed cells, produced by the importer

# Reference Data

Loaded once from the definitions file and immutable for the run:

  - Definitions: respondent column plus the ordered category list
  - Category: votable question with its column, selection bounds, and roster
  - Candidate: selectable option with id and display name

Category order in Definitions is the canonical order of the final report;
candidate roster order defines the universe of valid ids for tallying.

# Pipeline Types

  - Response: one respondent's canonicalized selections (ephemeral, one per row)
  - Warning: a recovered category-level normalization issue
  - TallyEntry: accumulated count and share for one (category, candidate) pair

# Report Types

The Report is the single structure consumed by every writer. JSON and
MessagePack struct tags carry identical field names so both wire encodings
decode to equivalent structures:

  - Report: run id, UTC generation timestamp, summary, ordered category results
  - CategoryResult: per-category valid response total and ranked entries
  - RankedEntry: candidate, count, percent, and competition rank
  - Summary: total respondents, rejected rows, warning count

# Errors

Sentinel errors for the two non-recoverable row and invariant failures:

	ErrStructuralRow  row unusable, excluded and counted
	ErrConsistency    internal invariant broken, aborts the run
*/
package models
