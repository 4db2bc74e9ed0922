// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable Matrix identifiers for
// roomctl: room IDs, user IDs, and server names.
//
// All constructors validate their input and return errors for invalid
// identifiers. Once constructed, a ref is immutable and opaque — roomctl
// never interprets the local part of a room ID, it only substitutes the
// validated identifier into request paths. Identifiers are parsed at the
// boundary (flags, config, API responses) and passed through as typed
// values.
//
// JSON marshaling uses the canonical Matrix form ("!opaque:server",
// "@localpart:server") via encoding.TextMarshaler.
package ref
