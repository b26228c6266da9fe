package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store provides SQLite-based storage for report run history.
//
// Design decision: We use a single database file for all projects rather
// than one per project. History queries span projects ("what did I run
// today?") and a single file simplifies backup and cleanup.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Run is one recorded report run.
type Run struct {
	ID           int64
	Project      string
	Hash         string
	BaseDomain   string
	ServiceCount int
	Format       string
	CreatedAt    time.Time
}

// Open opens or creates a Store in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, "space.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the path of the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per rendered report
	CREATE TABLE IF NOT EXISTS report_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		hash TEXT NOT NULL,
		base_domain TEXT NOT NULL,
		service_count INTEGER NOT NULL,
		format TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_project ON report_runs(project);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON report_runs(created_at);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Record inserts a report run and returns its ID.
func (s *Store) Record(ctx context.Context, run *Run) (int64, error) {
	query := `
	INSERT INTO report_runs (project, hash, base_domain, service_count, format)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		run.Project,
		run.Hash,
		run.BaseDomain,
		run.ServiceCount,
		run.Format,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record report run: %w", err)
	}

	return result.LastInsertId()
}

// List returns the most recent runs, newest first, up to limit.
// A non-positive limit returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
	SELECT id, project, hash, base_domain, service_count, format, created_at
	FROM report_runs
	ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&run.Project,
			&run.Hash,
			&run.BaseDomain,
			&run.ServiceCount,
			&run.Format,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		run.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different formats depending on
// configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
