// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for roomctl.
//
// Configuration is loaded from a single YAML file specified by:
//   - the ROOMCTL_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There are no fallbacks or automatic discovery. When neither is set,
// compiled-in defaults apply. This keeps configuration deterministic
// and auditable: a flag overrides the file, the file overrides the
// defaults, and nothing else is consulted.
//
// The file carries the values that were literals in earlier operator
// scripts: the homeserver URL, the homeserver's own server name, the
// path to its SQLite database, and the default room for membership
// operations.
package config
