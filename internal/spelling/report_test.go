// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spelling

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textfix/internal/rewrite"
)

func TestGenerateReport(t *testing.T) {
	var many []string
	for i := 0; i < 12; i++ {
		many = append(many, fmt.Sprintf("color%d → colour%d", i, i))
	}

	results := []rewrite.FileResult{
		{Rel: "docs/a.md", Changed: true, Changes: []string{"color → colour", "center → centre"}},
		{Rel: "docs/b.md"},
		{Rel: "docs/c.md", Err: errors.New("permission denied")},
		{Rel: "docs/d.qmd", Changed: true, Changes: many},
	}

	report := GenerateReport(results, ReportTitle)

	assert.True(t, strings.HasPrefix(report, "Spelling Conversion Report\n"+strings.Repeat("=", 50)+"\n"))
	assert.Contains(t, report, "Files processed: 2\n")
	assert.Contains(t, report, "Total changes: 14\n")
	assert.Contains(t, report, "docs/a.md:\n  • color → colour\n  • center → centre\n")
	assert.NotContains(t, report, "docs/b.md")
	assert.NotContains(t, report, "docs/c.md")

	assert.Contains(t, report, "  • color9 → colour9\n")
	assert.NotContains(t, report, "color10 → colour10")
	assert.Contains(t, report, "  ... and 2 more changes\n")
}

func TestGenerateReport_NoChanges(t *testing.T) {
	assert.Equal(t, "No spelling changes needed.", GenerateReport(nil, ReportTitle))
	assert.Equal(t, "No spelling changes needed.",
		GenerateReport([]rewrite.FileResult{{Rel: "a.md"}}, DryRunReportTitle))
}

func TestGenerateReport_DryRunTitle(t *testing.T) {
	report := GenerateReport([]rewrite.FileResult{{Rel: "a.md", Changed: true, Changes: []string{"x → y"}}}, DryRunReportTitle)
	assert.True(t, strings.HasPrefix(report, "Spelling Analysis Report (DRY RUN)\n"))
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteReport(dir, "report body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ReportFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))

	_, err = WriteReport(filepath.Join(dir, "missing"), "x")
	require.Error(t, err)
}
