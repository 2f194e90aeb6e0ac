// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the optional run archive.

# Schema Creation

CreateSchema initializes the archive table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Archive

Each run stores one row in report_run: run id, generation timestamp, the
summary counters, and the full Report as a JSON payload. SaveReport writes
a run; LoadReport restores it:

	err := db.SaveReport(conn, rep)
	rep, err := db.LoadReport(conn, runID)

Works against sqlite (modernc.org/sqlite) or postgres (lib/pq); queries use
$1 placeholders, which both drivers accept.
*/
package db
