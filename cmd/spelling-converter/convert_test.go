// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textfix/internal/rewrite"
	"github.com/pdiddy/textfix/internal/spelling"
	"github.com/pdiddy/textfix/pkg/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func spellingConfig(dryRun bool) types.SpellingConfig {
	return types.SpellingConfig{
		Mode:       types.ModeHybrid,
		Extensions: types.DefaultSpellingExtensions,
		DryRun:     dryRun,
	}
}

func TestConvertSpelling_Directory(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	style := filepath.Join(dir, "css", "site.css")
	clean := filepath.Join(dir, "clean.txt")
	skipped := filepath.Join(dir, "main.go")
	writeFile(t, doc, "The color of the center.\n\n```\ncolor := 1\n```\n")
	writeFile(t, style, "/* color */\np { color: red; }\n")
	writeFile(t, clean, "Nothing to see here.\n")
	writeFile(t, skipped, "// color\n")

	var out, warn bytes.Buffer
	require.NoError(t, convertSpelling(&out, &warn, dir, spellingConfig(false)))

	assert.Equal(t, "The colour of the centre.\n\n```\ncolor := 1\n```\n", readFile(t, doc))
	assert.Equal(t, "/* colour */\np { color: red; }\n", readFile(t, style))
	assert.Equal(t, "Nothing to see here.\n", readFile(t, clean))
	assert.Equal(t, "// color\n", readFile(t, skipped))

	log := out.String()
	assert.Contains(t, log, "Converting American spelling to Australian-British spelling in: "+dir)
	assert.Contains(t, log, "Mode: hybrid")
	assert.Contains(t, log, "✓ Updated: doc.md (2 changes)")
	assert.Contains(t, log, "✓ Updated: "+filepath.Join("css", "site.css")+" (1 changes)")
	assert.NotContains(t, log, "clean.txt")
	assert.Contains(t, log, "Total changes: 3")
	assert.Contains(t, log, "Detailed report saved to: "+filepath.Join(dir, spelling.ReportFile))
	assert.Empty(t, warn.String())

	report := readFile(t, filepath.Join(dir, spelling.ReportFile))
	assert.Contains(t, report, spelling.ReportTitle)
	assert.Contains(t, report, "  • color → colour")
}

func TestConvertSpelling_SecondRunIgnoresReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.md"), "The color.\n")

	require.NoError(t, convertSpelling(&bytes.Buffer{}, &bytes.Buffer{}, dir, spellingConfig(false)))
	report := readFile(t, filepath.Join(dir, spelling.ReportFile))

	var out bytes.Buffer
	require.NoError(t, convertSpelling(&out, &bytes.Buffer{}, dir, spellingConfig(false)))
	assert.Contains(t, out.String(), "No spelling changes needed.")
	assert.Equal(t, report, readFile(t, filepath.Join(dir, spelling.ReportFile)))
}

func TestConvertSpelling_DryRun(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "We organize by color.\n")

	var out bytes.Buffer
	require.NoError(t, convertSpelling(&out, &bytes.Buffer{}, dir, spellingConfig(true)))

	assert.Equal(t, "We organize by color.\n", readFile(t, doc))
	assert.NoFileExists(t, filepath.Join(dir, spelling.ReportFile))

	log := out.String()
	assert.Contains(t, log, "DRY RUN - Analyzing American spelling in: "+dir)
	assert.Contains(t, log, "Would update: doc.md (2 changes)")
	assert.Contains(t, log, spelling.DryRunReportTitle)
	assert.Contains(t, log, "Dry run complete. No files were modified.")
}

func TestConvertSpelling_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.rst")
	writeFile(t, path, "Color and favor.\n")

	var out bytes.Buffer
	require.NoError(t, convertSpelling(&out, &bytes.Buffer{}, path, spellingConfig(false)))

	assert.Equal(t, "Colour and favour.\n", readFile(t, path))
	log := out.String()
	assert.Contains(t, log, "✓ Updated: notes.rst (2 changes)")
	assert.Contains(t, log, "Changes made:")
	assert.Contains(t, log, "  • Color → Colour")
	assert.Contains(t, log, "  • favor → favour")
	assert.NoFileExists(t, filepath.Join(dir, spelling.ReportFile))
}

func TestConvertSpelling_SingleFileUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "Already colour.\n")

	var out bytes.Buffer
	require.NoError(t, convertSpelling(&out, &bytes.Buffer{}, path, spellingConfig(true)))
	assert.Contains(t, out.String(), "No spelling changes needed.")
}

func TestConvertSpelling_MissingPath(t *testing.T) {
	err := convertSpelling(&bytes.Buffer{}, &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing"), spellingConfig(false))
	require.ErrorIs(t, err, rewrite.ErrPathNotFound)
}

func TestConvertSpelling_CustomWordList(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(t.TempDir(), "words.txt")
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, list, "gray=grey\nnot a pair\n")
	writeFile(t, doc, "A gray color.\n")

	cfg := spellingConfig(false)
	cfg.WordList = list

	var out, warn bytes.Buffer
	require.NoError(t, convertSpelling(&out, &warn, doc, cfg))

	assert.Equal(t, "A grey colour.\n", readFile(t, doc))
	assert.Contains(t, out.String(), "Loading custom word list: "+list)
	assert.Contains(t, out.String(), "Loaded 1 custom word mappings")
	assert.Contains(t, warn.String(), "invalid format on line 2")
}

func TestConvertSpelling_BadWordListContinues(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "A color.\n")

	cfg := spellingConfig(false)
	cfg.WordList = filepath.Join(dir, "words.xml")
	writeFile(t, cfg.WordList, "<words/>")

	var out, warn bytes.Buffer
	require.NoError(t, convertSpelling(&out, &warn, doc, cfg))

	assert.Equal(t, "A colour.\n", readFile(t, doc))
	assert.Contains(t, warn.String(), "warning:")
	assert.Contains(t, warn.String(), "unsupported word list format")
	assert.Contains(t, out.String(), "Loaded 0 custom word mappings")
}
