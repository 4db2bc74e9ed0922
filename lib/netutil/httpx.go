// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for roomctl.
//
// ReadResponse bounds body reads at MaxResponseSize so a misbehaving
// homeserver cannot cause unbounded memory allocation. It is for JSON
// API responses, not streaming transfers.
package netutil

import "io"

// MaxResponseSize is the bound on JSON API response body reads: 64 MB.
// Matrix client-server API responses are orders of magnitude smaller;
// the limit exists only so that a pathological response cannot exhaust
// memory.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
