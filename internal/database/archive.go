package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wikicrawl/wikicrawl/internal/model"
)

// Archive provides SQLite-based storage for crawled pages and run
// summaries. It manages the connection and provides CRUD operations for
// the history command.
type Archive struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Archive behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended: queries can
	// read the archive while a crawl is writing to it.
	EnableWAL bool
}

// DefaultOptions returns the default archive options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the archive in dbDir. With CreateIfNotExists the
// directory and file are created; without it, a missing database is an
// error (useful for the history command, which should not create an
// empty archive just to report nothing).
func Open(dbDir string, opts Options) (*Archive, error) {
	dbPath := filepath.Join(dbDir, "wikicrawl.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite supports one writer; the crawl is sequential anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	a := &Archive{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := a.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// createTables creates the archive schema if it doesn't exist.
func (a *Archive) createTables() error {
	schema := `
	-- Pages store one row per artifact the crawler wrote
	CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL UNIQUE,
		site TEXT NOT NULL,
		title TEXT,
		artifact TEXT NOT NULL,
		heading_count INTEGER DEFAULT 0,
		paragraph_count INTEGER DEFAULT 0,
		link_count INTEGER DEFAULT 0,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pages_site ON pages(site);
	CREATE INDEX IF NOT EXISTS idx_pages_fetched ON pages(fetched_at);

	-- Runs store one row per crawl invocation
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		site TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		pages_written INTEGER DEFAULT 0,
		attempts INTEGER DEFAULT 0,
		failures INTEGER DEFAULT 0,
		stop_reason TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_site ON runs(site);
	`

	_, err := a.db.ExecContext(context.Background(), schema)
	return err
}

// PageRecord is a stored page row.
type PageRecord struct {
	ID             int64
	URL            string
	Site           string
	Title          string
	Artifact       string
	HeadingCount   int
	ParagraphCount int
	LinkCount      int
	FetchedAt      time.Time
}

// InsertPage inserts or updates a page record. A re-crawled URL (after a
// state reset) replaces its previous row rather than duplicating it.
func (a *Archive) InsertPage(ctx context.Context, rec *PageRecord) (int64, error) {
	query := `
	INSERT INTO pages (url, site, title, artifact, heading_count, paragraph_count, link_count)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		title = excluded.title,
		artifact = excluded.artifact,
		heading_count = excluded.heading_count,
		paragraph_count = excluded.paragraph_count,
		link_count = excluded.link_count,
		fetched_at = CURRENT_TIMESTAMP
	`

	result, err := a.db.ExecContext(ctx, query,
		rec.URL,
		rec.Site,
		rec.Title,
		rec.Artifact,
		rec.HeadingCount,
		rec.ParagraphCount,
		rec.LinkCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert page record: %w", err)
	}

	return result.LastInsertId()
}

// ListPages returns the archived pages for a site, most recent first.
// A limit of zero returns everything.
func (a *Archive) ListPages(ctx context.Context, site string, limit int) ([]PageRecord, error) {
	query := `
	SELECT id, url, site, title, artifact, heading_count, paragraph_count, link_count, fetched_at
	FROM pages
	WHERE site = ?
	ORDER BY fetched_at DESC, id DESC
	`
	args := []any{site}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var results []PageRecord
	for rows.Next() {
		var rec PageRecord
		var fetchedAt string

		err := rows.Scan(
			&rec.ID,
			&rec.URL,
			&rec.Site,
			&rec.Title,
			&rec.Artifact,
			&rec.HeadingCount,
			&rec.ParagraphCount,
			&rec.LinkCount,
			&fetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page record: %w", err)
		}

		rec.FetchedAt = parseTimestamp(fetchedAt)
		results = append(results, rec)
	}

	return results, rows.Err()
}

// InsertRun records a completed crawl run.
func (a *Archive) InsertRun(ctx context.Context, s *model.CrawlSummary) error {
	query := `
	INSERT INTO runs (site, started_at, finished_at, pages_written, attempts, failures, stop_reason)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := a.db.ExecContext(ctx, query,
		s.Site,
		s.StartedAt.UTC().Format(time.RFC3339),
		s.FinishedAt.UTC().Format(time.RFC3339),
		s.PagesWritten,
		s.Attempts,
		s.Failures,
		string(s.Reason),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}

	return nil
}

// RunRecord is a stored run row.
type RunRecord struct {
	ID           int64
	Site         string
	StartedAt    time.Time
	FinishedAt   time.Time
	PagesWritten int
	Attempts     int
	Failures     int
	StopReason   string
}

// ListRuns returns archived runs for a site, most recent first.
func (a *Archive) ListRuns(ctx context.Context, site string) ([]RunRecord, error) {
	query := `
	SELECT id, site, started_at, finished_at, pages_written, attempts, failures, stop_reason
	FROM runs
	WHERE site = ?
	ORDER BY started_at DESC, id DESC
	`

	rows, err := a.db.QueryContext(ctx, query, site)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var results []RunRecord
	for rows.Next() {
		var rec RunRecord
		var started, finished string

		err := rows.Scan(
			&rec.ID,
			&rec.Site,
			&started,
			&finished,
			&rec.PagesWritten,
			&rec.Attempts,
			&rec.Failures,
			&rec.StopReason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}

		rec.StartedAt = parseTimestamp(started)
		rec.FinishedAt = parseTimestamp(finished)
		results = append(results, rec)
	}

	return results, rows.Err()
}

// CountPages returns the number of archived pages for a site.
func (a *Archive) CountPages(ctx context.Context, site string) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pages WHERE site = ?", site).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// timestampFormats contains the timestamp formats SQLite may return,
// more specific formats first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite returns timestamps in different formats depending on
// configuration; unparsable values yield the zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
