package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikicrawl/wikicrawl/internal/config"
	"github.com/wikicrawl/wikicrawl/internal/crawl"
	"github.com/wikicrawl/wikicrawl/internal/database"
	"github.com/wikicrawl/wikicrawl/internal/fetch"
	"github.com/wikicrawl/wikicrawl/internal/frontier"
	"github.com/wikicrawl/wikicrawl/internal/log"
	"github.com/wikicrawl/wikicrawl/internal/model"
	"github.com/wikicrawl/wikicrawl/internal/report"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [seed-urls...]",
		Short: "Crawl the configured wiki site breadth-first",
		Long: `Crawl fetches pages breadth-first from the seed URLs, extracts each
article's headings and paragraphs, writes one text artifact per page,
and follows same-site links until the page budget is exhausted.

Progress is persisted after every page. Running the same command again
resumes the crawl: URLs already visited are skipped, the artifact
counter continues where it stopped.

Environment: WIKICRAWL_MAX_PAGES, WIKICRAWL_START_URLS (comma-separated),
WIKICRAWL_SCOPE_HOST, and WIKICRAWL_OUTPUT_DIR override defaults and are
themselves overridden by flags.

Examples:
  # Crawl the default site with the default budget
  wikicrawl crawl

  # Crawl from explicit seeds with a larger budget
  wikicrawl crawl --max-pages 200 https://tr.wikipedia.org/wiki/Ankara

  # Write the run summary as markdown to a file
  wikicrawl crawl --markdown -o report.md

Configuration file (.wikicrawl) example:
  defaults:
    maxPages: 100
  sites:
    tr.wikipedia.org:
      seeds:
        - https://tr.wikipedia.org/wiki/Ankara`,
		Args: cobra.ArbitraryArgs,
		RunE: runCrawlCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Page budget: maximum artifacts on disk across resumed runs")
	cmd.Flags().StringP("scope", "s", config.DefaultScopeHost,
		"Site scope: a URL is crawled only if its host contains this substring")
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Timeout for each page fetch")
	cmd.Flags().Int("max-retries", config.DefaultMaxRetries,
		"Failed fetch attempts allowed per URL before giving up on it")
	cmd.Flags().Bool("skip-empty", false,
		"Discard pages with no extractable content instead of counting them")

	// Output flags
	cmd.Flags().StringP("output-dir", "d", config.DefaultOutputDir,
		"Directory page artifacts are written to")
	cmd.Flags().String("state-file", "",
		"Frontier state file path (default: crawl_state.json in the data directory)")
	cmd.Flags().Bool("no-archive", false,
		"Disable the SQLite page archive")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikicrawl in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the run summary as Markdown instead of plain text")
	cmd.Flags().StringP("report-file", "o", "",
		"Write the run summary to the specified file path")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Signal handling for graceful shutdown; the frontier state is
	// checkpointed after every page, so an interrupt loses at most the
	// in-flight URL.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig assembles the Config: defaults, then the YAML file, then
// environment variables, then flags, then positional seed URLs.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configPathFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file, a missing file is
	// an error; otherwise silently skip the file layer.
	explicitConfigPath := configPathFlag != ""
	configPath := config.FindConfigFile(configPathFlag)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.GetSiteConfig(cfg.ScopeHost).Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", configPathFlag)
	}

	cfg.FromEnv()

	if cmd.Flags().Changed("max-pages") {
		if cfg.MaxPages, err = cmd.Flags().GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("scope") {
		if cfg.ScopeHost, err = cmd.Flags().GetString("scope"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-retries") {
		if cfg.MaxRetries, err = cmd.Flags().GetInt("max-retries"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output-dir") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("state-file") {
		if cfg.StateFile, err = cmd.Flags().GetString("state-file"); err != nil {
			return nil, err
		}
	}

	skipEmpty, err := cmd.Flags().GetBool("skip-empty")
	if err != nil {
		return nil, err
	}
	if skipEmpty {
		cfg.CountEmptyPages = false
	}

	noArchive, err := cmd.Flags().GetBool("no-archive")
	if err != nil {
		return nil, err
	}
	if noArchive {
		cfg.ArchiveToDB = false
	}

	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("report-file"); err != nil {
		return nil, err
	}

	// Positional arguments are seed URLs and take precedence over every
	// other seed source.
	if len(args) > 0 {
		cfg.StartURLs = args
	}

	return cfg, nil
}

// runCrawl executes the crawl. Progress and summary output goes to out,
// normally the command's stdout.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	logger.Info("starting crawl",
		"seeds", cfg.StartURLs,
		"scope", cfg.ScopeHost,
		"maxPages", cfg.MaxPages,
		"outputDir", cfg.OutputDir,
	)

	state, err := frontier.LoadState(cfg.StateFilePath())
	if err != nil {
		return fmt.Errorf("failed to load crawl state: %w", err)
	}
	if state.FileCount > 0 {
		fmt.Fprintf(out, "Resuming crawl: %d page(s) already on disk, %d URL(s) visited\n",
			state.FileCount, len(state.Visited))
	}

	fr := frontier.New(state, frontier.Options{
		StatePath:  cfg.StateFilePath(),
		MaxPages:   cfg.MaxPages,
		MaxRetries: cfg.MaxRetries,
		ScopeHost:  cfg.ScopeHost,
	})

	fetcher := fetch.NewClient(cfg.FetchTimeout,
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	opts := []crawl.Option{
		crawl.WithLogger(logger),
		crawl.WithCountEmptyPages(cfg.CountEmptyPages),
		crawl.WithProgress(crawl.ProgressFunc(func(completed, budget, queueDepth int) {
			fmt.Fprintf(out, "[%d/%d] crawled, %d queued\n", completed, budget, queueDepth)
		})),
	}

	var archive *database.Archive
	if cfg.ArchiveToDB {
		archive, err = database.Open(cfg.DataDir, database.DefaultOptions())
		if err != nil {
			// The archive is convenience storage; the crawl is still
			// durable through the state file.
			logger.Warn("page archive unavailable", "error", err)
		} else {
			defer archive.Close()
			opts = append(opts, crawl.WithArchive(archive))
		}
	}

	loop := crawl.NewLoop(fetcher, fr, cfg.OutputDir, cfg.ScopeHost, cfg.MaxPages, opts...)

	startTime := time.Now()
	summary, runErr := loop.Run(ctx, cfg.StartURLs)
	if summary != nil {
		fmt.Fprintf(out, "\nCrawl finished in %s\n\n", time.Since(startTime).Round(time.Millisecond))
		if err := outputSummary(cfg, summary, out); err != nil {
			logger.Error("summary output failed", "error", err)
		}
	}

	return runErr
}

// outputSummary writes the run summary in the requested format, to the
// report file when configured or to out otherwise.
func outputSummary(cfg *config.Config, summary *model.CrawlSummary, out io.Writer) error {
	output := out
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(output)
	} else {
		writer = report.NewSimpleWriter(output)
	}

	_, err := writer.Write(summary)
	return err
}
