// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer reads the survey export and the category definitions.

# Survey Rows

ReadRows loads the export into header-keyed rows for the tally pipeline:

	rows, err := importer.ReadRows("answers.xlsx")

Supported formats (by extension): .xlsx via excelize (first sheet) and .csv.
The first row is the header; line numbers in RawRow are 1-based file lines so
warnings point at the spreadsheet row a reviewer would open.

# Definitions

LoadDefinitions reads the reference configuration (respondent column plus the
ordered categories with rosters and selection bounds) from JSON or YAML:

	defs, err := importer.LoadDefinitions("categories.yaml")

The result is validated once and treated as immutable for the run: unique
category and candidate ids, non-empty rosters, sane selection bounds.
*/
package importer
