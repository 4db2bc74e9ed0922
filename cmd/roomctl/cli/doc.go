// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree for roomctl: subcommand
// dispatch, pflag-based flag parsing, generated help output, and
// suggestion of the closest command or flag name on a typo.
//
// [SessionConfig] carries the flags shared by every command that talks
// to the homeserver (--config, --homeserver, --token-file, --token) and
// knows how to resolve the configuration and acquire the access token —
// interactively, with no echo, when no flag supplies one.
//
// [ExitError] lets a command that has already printed its own output
// request a specific exit code without an extra "error:" line from main.
package cli
