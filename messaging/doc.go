// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package messaging wraps the slice of the Matrix client-server API that
// roomctl needs for room membership operations.
//
// The package provides two core types. [Client] is an unauthenticated
// homeserver client holding the base URL and HTTP transport; it serves
// the unauthenticated reachability probe ([Client.ServerVersions]) and
// creates authenticated [Session] values via [Client.SessionFromToken].
//
// [Session] wraps a Client with a bearer access token for authenticated
// operations: joining a room (with an optional server_name parameter
// for federated joins), leaving a room, listing joined rooms, and
// identity verification (WhoAmI). The token lives in an mmap-backed
// secret.Buffer (locked against swap, excluded from core dumps);
// callers must call Session.Close to release the protected memory.
//
// Every operation is single-shot: one invocation produces exactly one
// outbound HTTP call, with no retry and no timeout beyond what the
// caller's context and the transport default impose.
//
// All API errors are returned as [*MatrixError] carrying the standard
// Matrix error code (M_FORBIDDEN, M_UNKNOWN_TOKEN, ...), the
// human-readable server message, and the HTTP status code.
// [IsMatrixError] tests for a specific code. Request URLs are built by
// string concatenation plus url.PathEscape rather than url.URL, to
// avoid double-encoding of room IDs in path segments.
package messaging
