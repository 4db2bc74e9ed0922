// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package room implements the roomctl room subcommands: membership
// operations (join, leave, joined) against the homeserver's
// client-server API, and direct inspection of the homeserver's rooms
// table (list).
//
// Membership operations follow the behavior of the operator scripts
// they replace: one request per invocation, no retry, and request
// failures are reported on stderr rather than propagated as exit codes.
package room

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
	"github.com/ember-hs/roomctl/lib/config"
	"github.com/ember-hs/roomctl/lib/ref"
	"github.com/ember-hs/roomctl/messaging"
)

// requestTimeout bounds each homeserver request. The original scripts
// relied on the transport default alone; the cap only prevents an
// unresponsive homeserver from hanging the terminal forever.
const requestTimeout = 30 * time.Second

// Command returns the "room" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "room",
		Summary: "Room membership and inspection",
		Description: `Join or leave a room on the homeserver, list the server-side joined
rooms, or inspect the homeserver's rooms table directly.

"list" reads the homeserver's own SQLite database (read-only) and shows
every room the server knows about. "joined" asks the API which rooms
the token's user is a member of. When the two disagree about a
membership, leave requests start failing with 403 — see
'roomctl room leave --help'.`,
		Subcommands: []*cli.Command{
			joinCommand(),
			leaveCommand(),
			listCommand(),
			joinedCommand(),
		},
	}
}

// resolveTarget picks the target room from the positional argument or
// the configured default room.
func resolveTarget(args []string, cfg config.Config, usage string) (ref.RoomID, error) {
	target := ""
	switch len(args) {
	case 0:
		target = cfg.DefaultRoom
	case 1:
		target = args[0]
	default:
		return ref.RoomID{}, fmt.Errorf("unexpected argument: %s", args[1])
	}
	if target == "" {
		return ref.RoomID{}, fmt.Errorf("room ID is required and no default_room is configured\n\nUsage: %s", usage)
	}

	roomID, err := ref.ParseRoomID(target)
	if err != nil {
		return ref.RoomID{}, fmt.Errorf("invalid room ID: %w", err)
	}
	return roomID, nil
}

// reportRequestFailure prints a membership request failure to stderr.
// The status code printed is exactly the HTTP response status; a
// transport-level failure (no response at all) prints the error text
// instead.
func reportRequestFailure(stderr io.Writer, operation string, roomID ref.RoomID, err error) {
	var matrixErr *messaging.MatrixError
	if errors.As(err, &matrixErr) {
		fmt.Fprintf(stderr, "%s %s failed: status %d: %s\n",
			operation, roomID, matrixErr.StatusCode, matrixErr.Message)
		return
	}
	fmt.Fprintf(stderr, "%s %s failed: %v\n", operation, roomID, err)
}
