// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the roomctl command tree.
package commands

import (
	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
	"github.com/ember-hs/roomctl/cmd/roomctl/room"
)

// Root returns the top-level roomctl command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "roomctl",
		Summary: "Operator tool for the Ember homeserver",
		Description: `roomctl manages room membership on an Ember homeserver through the
Matrix client-server API, and inspects the homeserver's SQLite database
directly for diagnostics.

Configuration is read from the file named by --config or the
ROOMCTL_CONFIG environment variable. The access token comes from
--token, --token-file, or an interactive prompt.`,
		Subcommands: []*cli.Command{
			room.Command(),
			whoamiCommand(),
			doctorCommand(),
		},
	}
}
