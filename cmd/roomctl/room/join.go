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
	"github.com/ember-hs/roomctl/lib/ref"
)

const joinUsage = "roomctl room join [room-id]"

type joinParams struct {
	cli.SessionConfig
	Via string
}

func joinCommand() *cli.Command {
	var params joinParams
	return &cli.Command{
		Name:    "join",
		Summary: "Join a room",
		Usage:   joinUsage,
		Description: `Join the given room as the token's user. With no argument the
configured default_room is joined.

A join can only succeed if the homeserver can see the room: either the
server is already participating in it, or --via names a server to join
through.`,
		Examples: []cli.Example{
			{
				Description: "Join the configured default room",
				Command:     "roomctl room join",
			},
			{
				Description: "Join a specific room, routing through another server",
				Command:     "roomctl room join '!control:ember.local' --via ember.local",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("join", pflag.ContinueOnError)
			params.SessionConfig.AddFlags(flagSet)
			flagSet.StringVar(&params.Via, "via", "",
				"server to join the room through (sent as server_name)")
			return flagSet
		},
		Run: func(args []string) error {
			return runJoin(&params, args, os.Stdout, os.Stderr)
		},
	}
}

func runJoin(params *joinParams, args []string, stdout, stderr io.Writer) error {
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}
	roomID, err := resolveTarget(args, cfg, joinUsage)
	if err != nil {
		return err
	}

	var via ref.ServerName
	if params.Via != "" {
		via, err = ref.ParseServerName(params.Via)
		if err != nil {
			return fmt.Errorf("invalid --via: %w", err)
		}
	}

	session, err := params.Connect(cfg, cli.NewCommandLogger())
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	response, err := session.JoinRoom(ctx, roomID, via)
	if err != nil {
		reportRequestFailure(stderr, "join", roomID, err)
		return nil
	}
	fmt.Fprintf(stdout, "joined %s\n", response.RoomID)
	return nil
}
