package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikicrawl/wikicrawl/internal/config"
	"github.com/wikicrawl/wikicrawl/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived crawl runs and pages",
		Long: `History lists what previous crawls stored in the page archive:
one line per run, and optionally the most recently crawled pages.

Examples:
  # Show runs for the default site
  wikicrawl history

  # Show runs and the last 20 pages for another site
  wikicrawl history --scope en.wikipedia.org --pages 20`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("scope", "s", config.DefaultScopeHost,
		"Site scope the history belongs to")
	cmd.Flags().Int("pages", 0,
		"Also list the N most recently crawled pages (0 = runs only)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	site, err := cmd.Flags().GetString("scope")
	if err != nil {
		return err
	}
	pageLimit, err := cmd.Flags().GetInt("pages")
	if err != nil {
		return err
	}

	// The history command never creates an empty archive just to report
	// nothing; a missing archive means no crawl has run yet.
	archive, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no crawl history available: %w", err)
	}
	defer archive.Close()

	ctx := cmd.Context()

	runs, err := archive.ListRuns(ctx, site)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintf(out, "No crawl runs recorded for %s\n", site)
		return nil
	}

	fmt.Fprintf(out, "Crawl runs for %s:\n\n", site)
	for _, r := range runs {
		fmt.Fprintf(out, "  %s  %3d page(s), %3d attempt(s), %d failure(s), stopped: %s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.PagesWritten,
			r.Attempts,
			r.Failures,
			r.StopReason,
		)
	}

	if pageLimit > 0 {
		pages, err := archive.ListPages(ctx, site, pageLimit)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nMost recent pages:\n\n")
		for _, p := range pages {
			title := p.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(out, "  %s  %s\n      %s\n",
				p.FetchedAt.Format("2006-01-02 15:04"),
				title,
				p.URL,
			)
		}
	}

	return nil
}
