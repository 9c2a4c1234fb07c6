// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spelling

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/textfix/internal/rewrite"
)

const (
	// ReportFile is the name of the report written into a processed directory.
	ReportFile = "spelling_conversion_report.txt"

	// ReportTitle heads a report for a run that modified files.
	ReportTitle = "Spelling Conversion Report"

	// DryRunReportTitle heads a report for a dry run.
	DryRunReportTitle = "Spelling Analysis Report (DRY RUN)"

	// maxListedChanges caps the changes listed per file in a report.
	maxListedChanges = 10
)

// GenerateReport summarises the changed files in results. Files without
// changes and failed files are left out.
func GenerateReport(results []rewrite.FileResult, title string) string {
	var changed []rewrite.FileResult
	for _, r := range results {
		if r.Err == nil && len(r.Changes) > 0 {
			changed = append(changed, r)
		}
	}
	if len(changed) == 0 {
		return "No spelling changes needed."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Files processed: %d\n", len(changed))
	fmt.Fprintf(&b, "Total changes: %d\n\n", rewrite.TotalChanges(changed))

	for _, r := range changed {
		fmt.Fprintf(&b, "%s:\n", r.Rel)
		for i, c := range r.Changes {
			if i == maxListedChanges {
				break
			}
			fmt.Fprintf(&b, "  • %s\n", c)
		}
		if extra := len(r.Changes) - maxListedChanges; extra > 0 {
			fmt.Fprintf(&b, "  ... and %d more changes\n", extra)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteReport writes report to ReportFile inside dir and returns its path.
func WriteReport(dir, report string) (string, error) {
	path := filepath.Join(dir, ReportFile)
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
