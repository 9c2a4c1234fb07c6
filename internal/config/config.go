// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the optional textfix.yaml configuration shared by the
// fix-md-lists and spelling-converter commands. Command-line flags bound to
// the same keys take precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/textfix/pkg/types"
)

// Config keys.
const (
	KeyListsExtensions    = "lists.extensions"
	KeyListsDryRun        = "lists.dry_run"
	KeySpellingMode       = "spelling.mode"
	KeySpellingWordList   = "spelling.wordlist"
	KeySpellingExtensions = "spelling.extensions"
	KeySpellingDryRun     = "spelling.dry_run"
)

const configName = "textfix"

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyListsExtensions, types.DefaultListExtensions)
	v.SetDefault(KeySpellingMode, string(types.ModeHybrid))
	v.SetDefault(KeySpellingExtensions, types.DefaultSpellingExtensions)
}

// Load reads the configuration file into v. When cfgFile is empty it looks
// for textfix.yaml in the working directory and then in
// ~/.config/textfix/; finding none is not an error. It returns the path of
// the file that was read, or "" if none was.
func Load(v *viper.Viper, cfgFile string) (string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Lists returns the list fixer settings from v.
func Lists(v *viper.Viper) types.ListsConfig {
	return types.ListsConfig{
		Extensions: extensions(v, KeyListsExtensions, types.DefaultListExtensions),
		DryRun:     v.GetBool(KeyListsDryRun),
	}
}

// Spelling returns the spelling converter settings from v. The mode is
// validated.
func Spelling(v *viper.Viper) (types.SpellingConfig, error) {
	mode, err := types.ParseMode(v.GetString(KeySpellingMode))
	if err != nil {
		return types.SpellingConfig{}, err
	}
	return types.SpellingConfig{
		Mode:       mode,
		WordList:   v.GetString(KeySpellingWordList),
		Extensions: extensions(v, KeySpellingExtensions, types.DefaultSpellingExtensions),
		DryRun:     v.GetBool(KeySpellingDryRun),
	}, nil
}

// extensions reads a list of extensions, adding the leading dot when it is
// missing and falling back to def when the list is empty.
func extensions(v *viper.Viper, key string, def []string) []string {
	raw := v.GetStringSlice(key)
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
