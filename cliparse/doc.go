// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-i           Survey export file (.xlsx or .csv)
	-c           Category definitions file (.json or .yaml)
	-o           Report output directory
	-d           Archive database URL (optional)
	-t           Database type (sqlite or postgres)
	--locale     Tie-break sort locale
	--delimiter  Multi-select cell delimiter
	--log-file   Debug log file path

# Environment Variables

Flags fall back to environment variables:

	INPUT_FILE          → -i
	DEFINITIONS_FILE    → -c
	OUTPUT_DIR          → -o
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	SORT_LOCALE         → --locale
	SELECTION_DELIMITER → --delimiter
	LOG_FILE            → --log-file

CLI flags take precedence over environment variables.

# Defaults

	OUTPUT_DIR          reports
	DATABASE_TYPE       sqlite
	SORT_LOCALE         pinyin
	SELECTION_DELIMITER ;
	LOG_FILE            logs/vote-report.log

# Validation

ParseFlags returns an error if required values are missing:

  - INPUT_FILE must be provided
  - DEFINITIONS_FILE must be provided
  - DATABASE_TYPE must be sqlite or postgres

The archive database is optional; with no DATABASE_URL the run only writes
report files.
*/
package cliparse
