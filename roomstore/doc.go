// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomstore reads room metadata directly from the homeserver's
// SQLite database.
//
// The homeserver keeps one row per room in its Rooms table: the room ID,
// the room version, and the creator's user ID. roomstore is a strictly
// read-only consumer of that table — the database is opened with
// SQLITE_OPEN_READONLY and query_only=ON, so nothing in this package
// can modify homeserver state.
//
// [Store.ListRooms] streams rows in storage order (no ORDER BY —
// whatever the engine returns, not guaranteed stable across calls).
// Each call takes a fresh connection and rescans; the sequence is not
// restartable. All access failures are returned as [*StoreAccessError]
// so callers can distinguish "the store is broken" from "a row is
// malformed" only by the wrapped error, not by partial output: rows
// already delivered before a failure stay delivered.
package roomstore
