// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fix-md-lists CLI, which makes sure
// every markdown list is preceded by a blank line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textfix/internal/config"
	"github.com/pdiddy/textfix/internal/listspacer"
	"github.com/pdiddy/textfix/internal/rewrite"
	"github.com/pdiddy/textfix/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the fix-md-lists command.
var rootCmd = &cobra.Command{
	Use:   "fix-md-lists [path]",
	Short: "Fix markdown list formatting by ensuring lists are preceded by blank lines",
	Long: `fix-md-lists inserts a blank line before every markdown list that directly
follows a line of text. Nested items and items that follow another list item
are left alone.

path is a .md or .qmd file, or a directory that is scanned recursively
(default: the current directory).`,
	Args:         cobra.MaximumNArgs(1),
	Version:      version,
	SilenceUsage: true,
	RunE:         runFix,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./textfix.yaml or ~/.config/textfix/textfix.yaml)")
	rootCmd.Flags().Bool("dry-run", false, "show what would be changed without making modifications")

	_ = viper.BindPFlag(config.KeyListsDryRun, rootCmd.Flags().Lookup("dry-run"))
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

func runFix(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	return fixLists(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, config.Lists(viper.GetViper()))
}

// fixLists discovers markdown files under path, fixes them (or reports what
// would change in a dry run) and prints per-file status and a summary to w.
// Only a missing path or a single non-markdown file is an error; per-file
// failures are reported and the run continues. Unreadable directories are
// reported to warn and skipped.
func fixLists(w, warn io.Writer, path string, cfg types.ListsConfig) error {
	files, err := rewrite.Discover(path, cfg.Extensions, warn)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(w, "No markdown files found")
		return nil
	}

	fmt.Fprintf(w, "Found %d markdown file(s)\n", len(files))
	if cfg.DryRun {
		fmt.Fprintln(w, "\nDRY RUN - No files will be modified")
	}

	results := rewrite.ProcessAll(listspacer.Transformer{}, path, files, cfg.DryRun)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "Error processing %s: %v\n", r.Path, r.Err)
		case r.Changed && cfg.DryRun:
			fmt.Fprintf(w, "Would fix: %s\n", r.Path)
		case r.Changed:
			fmt.Fprintf(w, "Fixed: %s\n", r.Path)
		default:
			fmt.Fprintf(w, "No changes needed: %s\n", r.Path)
		}
	}

	summary := rewrite.Summarize(results)
	if cfg.DryRun {
		fmt.Fprintf(w, "\nDry run complete. %d file(s) would be modified\n", summary.Changed)
	} else {
		fmt.Fprintf(w, "\nProcessing complete. %d file(s) modified\n", summary.Changed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
