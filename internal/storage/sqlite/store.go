// Package sqlite provides the sqlite-backed request journal.
//
// The default DSN is ":memory:", so the journal lives and dies with the
// process unless a file path is configured.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/hypermedia-lab/lessons/internal/platform/storage/sqlitemigrate"
	"github.com/hypermedia-lab/lessons/internal/storage"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// DefaultDSN keeps the journal in memory.
const DefaultDSN = ":memory:"

// Store is a sqlite-backed storage.RequestLogStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the journal database and applies migrations.
func Open(dsn string) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The in-memory database disappears once its last connection closes, so
	// the pool must hold exactly one.
	db.SetMaxOpenConns(1)
	if err := sqlitemigrate.Apply(db, migrationFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate request journal: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// AppendRequestEvent records one handled request.
func (s *Store) AppendRequestEvent(ctx context.Context, event storage.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO request_log (ts, module, method, path, status, duration_ms)
         VALUES (?, ?, ?, ?, ?, ?)`,
		toMillis(event.Timestamp),
		event.Module,
		event.Method,
		event.Path,
		event.Status,
		event.Elapsed.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("append request event: %w", err)
	}
	return nil
}

// ListRecentRequestEvents returns up to limit events, newest first.
func (s *Store) ListRecentRequestEvents(ctx context.Context, limit int) ([]storage.RequestEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts, module, method, path, status, duration_ms
         FROM request_log ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list request events: %w", err)
	}
	defer rows.Close()

	var events []storage.RequestEvent
	for rows.Next() {
		var (
			ts         int64
			durationMS int64
			event      storage.RequestEvent
		)
		if err := rows.Scan(&ts, &event.Module, &event.Method, &event.Path, &event.Status, &durationMS); err != nil {
			return nil, fmt.Errorf("scan request event: %w", err)
		}
		event.Timestamp = fromMillis(ts)
		event.Elapsed = time.Duration(durationMS) * time.Millisecond
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request events: %w", err)
	}
	return events, nil
}
