// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote-report/models"
)

// ReadRows loads the survey export into header-keyed rows. The format is
// chosen by extension: .xlsx (first sheet) or .csv. The first row is the
// header; short rows are padded with empty cells.
func ReadRows(path string) ([]models.RawRow, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readXLSX(path)
	case ".csv":
		records, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		cells := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(record) {
				cells[h] = record[j]
			} else {
				cells[h] = ""
			}
		}
		rows = append(rows, models.RawRow{Line: i + 2, Cells: cells})
	}

	slog.Info("input file read", "path", path, "rows", len(rows), "columns", len(header))
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheet)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // survey exports have ragged rows
	return r.ReadAll()
}
