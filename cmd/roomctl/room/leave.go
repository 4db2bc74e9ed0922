// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
	"github.com/ember-hs/roomctl/messaging"
)

const leaveUsage = "roomctl room leave [room-id]"

// splitBrainHint is printed when a leave is rejected with 403. A 403 on
// leave means the homeserver does not consider the user a member of the
// room, which in practice indicates the server's membership view has
// split-brained: the rooms table says one thing, the membership state
// another. Nothing short of editing the homeserver database repairs it,
// so the command points the operator at the inspection tools instead of
// attempting anything itself.
const splitBrainHint = `hint: a 403 on leave usually means the homeserver's membership state is
inconsistent (the server thinks you are not in the room). Compare
'roomctl room list' with 'roomctl room joined'; if they disagree, the
homeserver database must be repaired by hand. Nothing was changed.`

type leaveParams struct {
	cli.SessionConfig
}

func leaveCommand() *cli.Command {
	var params leaveParams
	return &cli.Command{
		Name:    "leave",
		Summary: "Leave a room",
		Usage:   leaveUsage,
		Description: `Leave the given room. With no argument the configured default_room is
left.

If the homeserver rejects the leave with 403 it believes the user is
not a member, which on a server that also shows the room in its rooms
table means the membership state has split-brained. The command prints
a diagnostic hint in that case and leaves the server untouched.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("leave", pflag.ContinueOnError)
			params.SessionConfig.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			return runLeave(&params, args, os.Stdout, os.Stderr)
		},
	}
}

func runLeave(params *leaveParams, args []string, stdout, stderr io.Writer) error {
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}
	roomID, err := resolveTarget(args, cfg, leaveUsage)
	if err != nil {
		return err
	}

	session, err := params.Connect(cfg, cli.NewCommandLogger())
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := session.LeaveRoom(ctx, roomID); err != nil {
		reportRequestFailure(stderr, "leave", roomID, err)
		if messaging.StatusOf(err) == 403 {
			fmt.Fprintln(stderr, splitBrainHint)
		}
		return nil
	}
	fmt.Fprintf(stdout, "left %s\n", roomID)
	return nil
}
