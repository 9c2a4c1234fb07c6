// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the spelling-converter CLI, which
// rewrites American spellings as Australian-British ones in text files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textfix/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the spelling-converter command.
var rootCmd = &cobra.Command{
	Use:   "spelling-converter <path>",
	Short: "Convert American spelling to Australian-British spelling",
	Long: `spelling-converter rewrites American spellings (color, organize, center)
as Australian-British ones (colour, organise, centre) while leaving code
blocks, inline code, HTML tags and attributes, CSS, URLs and front matter
untouched. The original casing of each word is kept.

path is a single file, or a directory whose .md, .qmd, .html, .txt and .css
files are processed recursively. A directory run that changes files writes
spelling_conversion_report.txt into the directory.

Modes:
  safe    explicit word mappings only
  regex   root pattern mappings, with an exception list
  hybrid  explicit mappings, then pattern mappings (default)`,
	Args:         cobra.ExactArgs(1),
	Version:      version,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./textfix.yaml or ~/.config/textfix/textfix.yaml)")
	rootCmd.Flags().String("mode", "hybrid", "conversion mode: safe, regex, or hybrid")
	rootCmd.Flags().StringP("wordlist", "w", "", "custom word list file (csv, json, txt, list, yaml, db)")
	rootCmd.Flags().Bool("dry-run", false, "show what would be changed without making modifications")

	_ = viper.BindPFlag(config.KeySpellingMode, rootCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag(config.KeySpellingWordList, rootCmd.Flags().Lookup("wordlist"))
	_ = viper.BindPFlag(config.KeySpellingDryRun, rootCmd.Flags().Lookup("dry-run"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	used, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		return
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Spelling(viper.GetViper())
	if err != nil {
		return err
	}
	return convertSpelling(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
}

// rule is the separator printed under run headers.
var rule = strings.Repeat("=", 60)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
