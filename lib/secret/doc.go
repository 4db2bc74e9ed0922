// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds bearer tokens in memory that cannot leak to disk.
//
// [Buffer] allocates its backing memory outside the Go heap via
// mmap(MAP_ANONYMOUS), locks it into physical RAM with mlock so it is
// never swapped, and marks it MADV_DONTDUMP so it is excluded from core
// dumps. Close zeros, unlocks, and unmaps the region. Because the
// garbage collector never sees the allocation, it cannot copy or
// relocate the token behind our back.
//
// Acquisition helpers cover the ways an operator hands roomctl a token:
//
//   - [Prompt] -- interactive no-echo read from the controlling terminal
//   - [ReadFromPath] -- from a file, or from stdin when the path is "-"
//   - [NewFromString] / [NewFromBytes] -- from material already in memory
//
// Access the token via [Buffer.Bytes] (a slice into the mmap region) or
// [Buffer.String] (a short-lived heap copy for API boundaries such as an
// Authorization header). After Close, any access panics. Close is
// idempotent.
//
// Depends on golang.org/x/sys and golang.org/x/term only.
package secret
