// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vote-report pipeline.

vote-report ingests a survey-style voting export, tallies votes per
category, resolves rankings with deterministic tie-breaking, and writes one
aggregated report in three formats (markdown, JSON, MessagePack).

# Running

	INPUT_FILE=answers.xlsx DEFINITIONS_FILE=categories.yaml go run .

Or with flags:

	go run . -i answers.xlsx -c categories.yaml -o reports

# Configuration

Required settings:

  - INPUT_FILE (-i): survey export, .xlsx or .csv
  - DEFINITIONS_FILE (-c): category definitions, .json or .yaml

Optional settings:

  - OUTPUT_DIR (-o): report directory (default: reports)
  - DATABASE_URL (-d): run archive DSN; archive is skipped when empty
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SORT_LOCALE (--locale): tie-break ordering policy (default: pinyin)
  - SELECTION_DELIMITER (--delimiter): multi-select separator (default: ;)
  - LOG_FILE (--log-file): debug log path (default: logs/vote-report.log)

# Architecture

The pipeline is a single synchronous pass:

  - importer: spreadsheet ingestion and definitions loading
  - tally: normalization, counting, ranking, report assembly (the core)
  - report: markdown/JSON/MessagePack writers over one Report value
  - db: optional archive of finished runs
  - cliparse: configuration parsing
  - logging: console + file slog setup
  - models: shared types and error taxonomy

See package documentation for each component.
*/
package main
