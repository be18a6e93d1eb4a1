// Package main provides the entry point for the wikicrawl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikicrawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikicrawl",
		Short: "Breadth-first article crawler for a single wiki site",
		Long: `wikicrawl crawls a wiki-style site breadth-first from seed URLs,
extracts each article's headings and paragraphs, and writes one text
artifact per page until a page budget is exhausted.

Crawl progress (visited URLs and the artifact counter) is persisted
after every page, so an interrupted run resumes from where it stopped
when started again with the same seeds.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
