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
)

type joinedParams struct {
	cli.SessionConfig
}

func joinedCommand() *cli.Command {
	var params joinedParams
	return &cli.Command{
		Name:    "joined",
		Summary: "List rooms the token's user has joined",
		Usage:   "roomctl room joined",
		Description: `Ask the homeserver which rooms the access token's user is currently a
member of, one room ID per line. This is the API's view of membership;
contrast with 'roomctl room list', which is the database's view.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("joined", pflag.ContinueOnError)
			params.SessionConfig.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			return runJoined(&params, args, os.Stdout, os.Stderr)
		},
	}
}

func runJoined(params *joinedParams, args []string, stdout, stderr io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	cfg, err := params.LoadConfig()
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

	joined, err := session.JoinedRooms(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "joined rooms query failed: %v\n", err)
		return nil
	}
	for _, roomID := range joined {
		fmt.Fprintln(stdout, roomID)
	}
	return nil
}
