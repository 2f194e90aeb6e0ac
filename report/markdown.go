// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/danielhkuo/vote-report/models"
)

// WriteMarkdown renders the human-readable report: a summary section and
// one ranked table per category, in report order.
func WriteMarkdown(rep models.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Vote Analysis Report\n\n")
	fmt.Fprintf(&b, "Generated: %s  \n", rep.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Run: %s\n\n", rep.RunID)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Respondents: %d\n", rep.Summary.TotalRespondents)
	fmt.Fprintf(&b, "- Rejected rows: %d\n", rep.Summary.RejectedRows)
	fmt.Fprintf(&b, "- Normalization warnings: %d\n\n", rep.Summary.Warnings)

	for _, cat := range rep.Categories {
		fmt.Fprintf(&b, "## %s\n\n", cat.Name)
		fmt.Fprintf(&b, "%d valid responses\n\n", cat.ValidResponses)
		b.WriteString("| Rank | Candidate | Votes | Share |\n")
		b.WriteString("|------|-----------|-------|-------|\n")
		for _, e := range cat.Entries {
			fmt.Fprintf(&b, "| %d | %s | %d | %.1f%% |\n", e.Rank, e.Name, e.Count, e.Percent)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}

	slog.Info("markdown report saved", "path", path)
	return nil
}
