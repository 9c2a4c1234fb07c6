// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textfix/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textfix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	used, err := Load(v, "")
	require.NoError(t, err)
	assert.Empty(t, used)

	lists := Lists(v)
	assert.Equal(t, types.DefaultListExtensions, lists.Extensions)
	assert.False(t, lists.DryRun)

	sp, err := Spelling(v)
	require.NoError(t, err)
	assert.Equal(t, types.ModeHybrid, sp.Mode)
	assert.Empty(t, sp.WordList)
	assert.Equal(t, types.DefaultSpellingExtensions, sp.Extensions)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `lists:
  extensions: [md, .markdown]
spelling:
  mode: safe
  wordlist: words.csv
  extensions: [".md"]
`)

	v := viper.New()
	used, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	assert.Equal(t, []string{".md", ".markdown"}, Lists(v).Extensions)

	sp, err := Spelling(v)
	require.NoError(t, err)
	assert.Equal(t, types.ModeSafe, sp.Mode)
	assert.Equal(t, "words.csv", sp.WordList)
	assert.Equal(t, []string{".md"}, sp.Extensions)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "textfix.yaml"), []byte("spelling:\n  mode: regex\n"), 0o644))
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	used, err := Load(v, "")
	require.NoError(t, err)
	assert.NotEmpty(t, used)

	sp, err := Spelling(v)
	require.NoError(t, err)
	assert.Equal(t, types.ModeRegex, sp.Mode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSpelling_InvalidMode(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeySpellingMode, "aggressive")

	_, err := Spelling(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggressive")
}
