// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package room

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
	"github.com/ember-hs/roomctl/roomstore"
)

type listParams struct {
	ConfigPath string
	Database   string
}

func listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List rooms from the homeserver database",
		Usage:   "roomctl room list",
		Description: `Read the homeserver's SQLite database directly (read-only) and print
every room it knows about: room ID, room version, and creator.

This is the server's own view of its rooms, independent of any access
token. Comparing it with 'roomctl room joined' is how membership
split-brain is diagnosed.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&params.ConfigPath, "config", "",
				"path to the roomctl config file")
			flagSet.StringVar(&params.Database, "database", "",
				"path to the homeserver SQLite database (overrides config)")
			return flagSet
		},
		Run: func(args []string) error {
			return runList(&params, args, os.Stdout, os.Stderr)
		},
	}
}

func runList(params *listParams, args []string, stdout, stderr io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	cfg, err := cli.LoadConfigPath(params.ConfigPath)
	if err != nil {
		return err
	}
	if params.Database != "" {
		cfg.Database = params.Database
	}

	store, err := roomstore.Open(roomstore.Config{
		Path:   cfg.Database,
		Logger: cli.NewCommandLogger(),
	})
	if err != nil {
		fmt.Fprintf(stderr, "room list failed: %v\n", err)
		return nil
	}
	defer store.Close()

	ctx := context.Background()

	// The tabwriter buffers until Flush, so a scan failure prints the
	// diagnostic alone: no header, no partial table.
	table := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "ROOM ID\tVERSION\tCREATOR")
	err = store.ListRooms(ctx, func(room roomstore.Room) error {
		fmt.Fprintf(table, "%s\t%s\t%s\n", room.ID, room.Version, room.Creator)
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "room list failed: %v\n", err)
		return nil
	}
	return table.Flush()
}
