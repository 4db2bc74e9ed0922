// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool provides roomctl's SQLite connection pool.
//
// It wraps zombiezen.com/go/sqlite with a fixed set of pragmas applied
// to every connection. Callers [Pool.Take] a connection, perform work,
// and [Pool.Put] it back. Connections are NOT safe for concurrent use —
// each goroutine must hold its own connection for the duration of its
// work.
//
// roomctl opens the homeserver's database in read-only mode
// (Config.ReadOnly): the file must already exist, the connection is
// opened with SQLITE_OPEN_READONLY, and query_only=ON is set as a
// second line of defense so a stray statement cannot modify homeserver
// state. Read-write mode exists for tests that need to seed fixture
// databases.
//
// # Pragmas
//
// Read-write connections get WAL journal mode, synchronous=NORMAL, and
// a busy timeout. Read-only connections skip the journal-mode change
// (it requires write access) and instead set query_only=ON. Both modes
// share an 8 MB page cache and in-memory temp store.
//
// # Design
//
// This package is intentionally thin: it applies standard pragmas and
// exposes the underlying zombiezen types directly. Callers write SQL
// and use sqlitex.Execute; there is no query builder and no ORM layer.
package sqlitepool
