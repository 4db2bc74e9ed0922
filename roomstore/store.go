// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package roomstore

import (
	"context"
	"fmt"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/ember-hs/roomctl/lib/sqlitepool"
)

// Room is one row of the homeserver's Rooms table.
type Room struct {
	// ID is the Matrix room ID (the roomId column, primary key). Kept
	// as a raw string: the inspector reports what the store contains,
	// including rows that would not parse as valid Matrix IDs.
	ID string
	// Version is the Matrix room version (the roomVersion column).
	Version string
	// Creator is the user ID that created the room (the creator column).
	Creator string
}

// StoreAccessError wraps any failure to open, connect to, or query the
// backing store. Extract with errors.As:
//
//	var storeErr *roomstore.StoreAccessError
//	if errors.As(err, &storeErr) { ... }
type StoreAccessError struct {
	// Op names the operation that failed ("open", "connect", "scan").
	Op string
	// Err is the underlying failure.
	Err error
}

func (e *StoreAccessError) Error() string {
	return fmt.Sprintf("roomstore: %s: %v", e.Op, e.Err)
}

func (e *StoreAccessError) Unwrap() error { return e.Err }

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the filesystem path to the homeserver's SQLite database.
	Path string
	// Logger receives operational messages. If nil, a no-op logger is
	// used.
	Logger *slog.Logger
}

// Store is a read-only view of the homeserver's rooms table.
type Store struct {
	pool   *sqlitepool.Pool
	logger *slog.Logger
}

// Open creates a Store over the database at cfg.Path. The database is
// opened read-only; connections are established lazily, so a missing or
// unreadable file surfaces as a StoreAccessError from ListRooms, not
// from Open. The caller must call Close.
func Open(cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     cfg.Path,
		ReadOnly: true,
		PoolSize: 1,
		Logger:   logger,
	})
	if err != nil {
		return nil, &StoreAccessError{Op: "open", Err: err}
	}

	return &Store{
		pool:   pool,
		logger: logger,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.pool.Close()
}

// ListRooms scans the Rooms table and calls fn for each row, in storage
// order. Returns a *StoreAccessError if the connection or the scan
// fails; an error returned by fn stops the scan and is returned as-is.
// The connection is returned to the pool on every exit path.
func (s *Store) ListRooms(ctx context.Context, fn func(Room) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return &StoreAccessError{Op: "connect", Err: err}
	}
	defer s.pool.Put(conn)

	var fnErr error
	err = sqlitex.Execute(conn,
		"SELECT roomId, roomVersion, creator FROM Rooms",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				room := Room{
					ID:      stmt.ColumnText(0),
					Version: stmt.ColumnText(1),
					Creator: stmt.ColumnText(2),
				}
				if err := fn(room); err != nil {
					fnErr = err
					return err
				}
				return nil
			},
		})
	if err != nil {
		if fnErr != nil {
			return fnErr
		}
		return &StoreAccessError{Op: "scan", Err: err}
	}
	return nil
}
