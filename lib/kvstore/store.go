// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// schema is the entire storage layout: one table mapping string keys
// to string values. Callers serialize whatever they store (the ticket
// collection is a JSON array under one key, the theme preference a
// bare literal under another).
const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Config holds the parameters for opening a key-value store. Path is
// required; Logger is optional.
type Config struct {
	// Path is the filesystem path to the SQLite database file. The
	// parent directory must exist. The file is created if it does
	// not exist. Use ":memory:" for an in-memory store in tests.
	Path string

	// Logger receives operational messages (open/close, pragma
	// errors). If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Store is a durable string key-value store backed by a single SQLite
// file. It is the only component that touches the database; everything
// above it reads and writes whole values.
//
// Store is safe for concurrent use, though the application is
// single-threaded in practice: every user action runs to completion
// before the next one starts.
type Store struct {
	pool   *sqlitex.Pool
	logger *slog.Logger
	path   string
}

// Open creates or opens the store at cfg.Path and ensures the schema
// exists. The caller must call Close when done.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("kvstore: Path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := sqlitex.NewPool(cfg.Path, sqlitex.PoolOptions{
		// One connection: the store is the single source of truth
		// for a single-user tool, and SQLite serializes writes
		// anyway.
		PoolSize:    1,
		PrepareConn: prepareConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: opening %s: %w", cfg.Path, err)
	}

	logger.Debug("kv store opened", "path", cfg.Path)

	return &Store{
		pool:   pool,
		logger: logger,
		path:   cfg.Path,
	}, nil
}

// Get returns the value stored under key. The second result is false
// when the key is absent.
func (store *Store) Get(ctx context.Context, key string) (string, bool, error) {
	conn, err := store.pool.Take(ctx)
	if err != nil {
		return "", false, fmt.Errorf("kvstore: take: %w", err)
	}
	defer store.pool.Put(conn)

	var value string
	var found bool
	err = sqlitex.Execute(conn, `SELECT value FROM kv WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return value, found, nil
}

// Set writes value under key, replacing any previous value. The write
// is durable when Set returns.
func (store *Store) Set(ctx context.Context, key, value string) error {
	conn, err := store.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("kvstore: take: %w", err)
	}
	defer store.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		&sqlitex.ExecOptions{Args: []any{key, value}},
	)
	if err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (store *Store) Delete(ctx context.Context, key string) error {
	conn, err := store.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("kvstore: take: %w", err)
	}
	defer store.pool.Put(conn)

	err = sqlitex.Execute(conn, `DELETE FROM kv WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
	})
	if err != nil {
		return fmt.Errorf("kvstore: delete %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection. After Close, all other
// methods return errors.
func (store *Store) Close() error {
	if err := store.pool.Close(); err != nil {
		store.logger.Error("kv store close error", "path", store.path, "error", err)
		return fmt.Errorf("kvstore: closing %s: %w", store.path, err)
	}
	store.logger.Debug("kv store closed", "path", store.path)
	return nil
}

// IsCapacityError reports whether err (anywhere in its chain) is a
// SQLITE_FULL condition: the database or the disk beneath it cannot
// grow. Callers surface this distinctly so the user knows to export
// and trim rather than retry.
func IsCapacityError(err error) bool {
	if err == nil {
		return false
	}
	return sqlite.ErrCode(err).ToPrimary() == sqlite.ResultFull
}

// prepareConnection applies pragmas and creates the schema. Runs once
// per connection, on first use.
func prepareConnection(conn *sqlite.Conn) error {
	// synchronous=FULL rather than the usual NORMAL: this database
	// is the sole copy of the user's data, so durability wins over
	// write latency at this scale.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=FULL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("kvstore: %s: %w", pragma, err)
		}
	}

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("kvstore: creating schema: %w", err)
	}
	return nil
}
