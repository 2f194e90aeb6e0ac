// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report writes a finished models.Report to its output formats.

Every writer consumes the same immutable Report value; none recomputes or
reinterprets tallies, so the formats cannot drift.

# Writers

  - WriteMarkdown: human-readable document, one ranked table per category
  - WriteJSON: machine-readable encoding for the visualization front end
  - WriteMsgpack: compact wire encoding sharing the JSON field names

# Converter

MsgpackToJSON decodes an archived MessagePack report and re-emits it as
JSON, round-tripping through the Report struct:

	err := report.MsgpackToJSON("report.msgpack", "report.json")

Output directories are created on demand.
*/
package report
