// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/danielhkuo/vote-report/models"
)

// WriteMsgpack serializes the Report as MessagePack. It decodes to a
// structure field-for-field equivalent to the JSON encoding because both
// read the same struct tags.
func WriteMsgpack(rep models.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	payload, err := msgpack.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode msgpack report: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write msgpack report: %w", err)
	}

	// Size comparison against the compact JSON encoding, for the log only
	jsonPayload, err := json.Marshal(rep)
	if err == nil && len(jsonPayload) > 0 {
		saved := 100 * (1 - float64(len(payload))/float64(len(jsonPayload)))
		slog.Info("msgpack report saved",
			"path", path,
			"size", humanize.Bytes(uint64(len(payload))),
			"json_size", humanize.Bytes(uint64(len(jsonPayload))),
			"saved", fmt.Sprintf("%.1f%%", saved),
		)
	} else {
		slog.Info("msgpack report saved", "path", path, "size", humanize.Bytes(uint64(len(payload))))
	}

	return nil
}

// ReadMsgpack decodes a MessagePack report file back into a Report.
func ReadMsgpack(path string) (models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to read msgpack report: %w", err)
	}
	var rep models.Report
	if err := msgpack.Unmarshal(data, &rep); err != nil {
		return models.Report{}, fmt.Errorf("failed to decode msgpack report: %w", err)
	}
	return rep, nil
}

// MsgpackToJSON converts a stored MessagePack report into its JSON form.
// Useful for inspecting archived runs without the front end.
func MsgpackToJSON(src, dst string) error {
	rep, err := ReadMsgpack(src)
	if err != nil {
		return err
	}
	if err := WriteJSON(rep, dst); err != nil {
		return err
	}
	slog.Info("converted msgpack report to JSON", "src", src, "dst", dst)
	return nil
}
