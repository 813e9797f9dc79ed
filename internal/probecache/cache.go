package probecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Daisywait/AntiDeepfake/internal/probe"
)

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected with a hint to clear them.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const schemaSQL = `
CREATE TABLE schema_version (
    version INTEGER NOT NULL
);

CREATE TABLE probes (
    path            TEXT PRIMARY KEY,
    size            INTEGER NOT NULL,
    mtime_ns        INTEGER NOT NULL,
    sample_rate     INTEGER NOT NULL,
    channels        INTEGER NOT NULL,
    frames          INTEGER NOT NULL,
    bits_per_sample INTEGER NOT NULL,
    encoding        TEXT NOT NULL,
    cached_at       TEXT NOT NULL
);
`

// Store manages probe result persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the probe cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them; a plain
	// db.Exec would only configure whichever single connection runs it.
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'antideepfake cache clear' or delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Lookup returns the cached probe for path when size and modification time
// still match the filesystem. A stale or absent entry reports ok=false.
func (s *Store) Lookup(ctx context.Context, path string, size, mtimeNS int64) (probe.Info, bool, error) {
	var info probe.Info
	err := s.db.QueryRowContext(ctx,
		`SELECT sample_rate, channels, frames, bits_per_sample, encoding
         FROM probes WHERE path = ? AND size = ? AND mtime_ns = ?`,
		path, size, mtimeNS,
	).Scan(&info.SampleRate, &info.Channels, &info.Frames, &info.BitsPerSample, &info.Encoding)
	if errors.Is(err, sql.ErrNoRows) {
		return probe.Info{}, false, nil
	}
	if err != nil {
		return probe.Info{}, false, fmt.Errorf("lookup probe: %w", err)
	}
	return info, true, nil
}

// Save records a probe result for path, replacing any previous entry.
func (s *Store) Save(ctx context.Context, path string, size, mtimeNS int64, info probe.Info) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO probes (
            path, size, mtime_ns, sample_rate, channels, frames,
            bits_per_sample, encoding, cached_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            size = excluded.size,
            mtime_ns = excluded.mtime_ns,
            sample_rate = excluded.sample_rate,
            channels = excluded.channels,
            frames = excluded.frames,
            bits_per_sample = excluded.bits_per_sample,
            encoding = excluded.encoding,
            cached_at = excluded.cached_at`,
		path, size, mtimeNS,
		info.SampleRate, info.Channels, info.Frames,
		info.BitsPerSample, info.Encoding,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save probe: %w", err)
	}
	return nil
}

// Stats describes cache usage for diagnostic output.
type Stats struct {
	DBPath    string
	Entries   int
	SizeBytes int64
}

// Stats reports the number of cached probes and the database size on disk.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{DBPath: s.path}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM probes").Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("count probes: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}

// Clear removes all cached probes.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM probes")
	if err != nil {
		return 0, fmt.Errorf("clear probes: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}
