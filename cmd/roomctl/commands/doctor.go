// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
	"github.com/ember-hs/roomctl/messaging"
	"github.com/ember-hs/roomctl/roomstore"
)

type doctorParams struct {
	cli.SessionConfig
	Database string
}

func doctorCommand() *cli.Command {
	var params doctorParams
	return &cli.Command{
		Name:    "doctor",
		Summary: "Check homeserver and database health",
		Usage:   "roomctl doctor",
		Description: `Run connectivity and consistency checks against the configured
homeserver and its database:

  - the homeserver answers the versions endpoint
  - the access token is valid and belongs to a user on the configured
    server (only when --token or --token-file is given; doctor never
    prompts)
  - the homeserver database opens read-only and its rooms table scans

Exits 1 if any check fails.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("doctor", pflag.ContinueOnError)
			params.SessionConfig.AddFlags(flagSet)
			flagSet.StringVar(&params.Database, "database", "",
				"path to the homeserver SQLite database (overrides config)")
			return flagSet
		},
		Run: func(args []string) error {
			return runDoctor(&params, args, os.Stdout)
		},
	}
}

func runDoctor(params *doctorParams, args []string, stdout io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}
	if params.Database != "" {
		cfg.Database = params.Database
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	healthy := true
	check := func(name string, err error) {
		if err != nil {
			healthy = false
			fmt.Fprintf(stdout, "fail: %s: %v\n", name, err)
			return
		}
		fmt.Fprintf(stdout, "ok:   %s\n", name)
	}

	logger := cli.NewCommandLogger()
	client, err := messaging.NewClient(messaging.ClientConfig{
		HomeserverURL: cfg.HomeserverURL,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	_, err = client.ServerVersions(ctx)
	check(fmt.Sprintf("homeserver %s reachable", cfg.HomeserverURL), err)

	// Token checks only run when a token was supplied on the command
	// line; doctor must stay non-interactive.
	if params.Token != "" || params.TokenFile != "" {
		check("access token valid", checkToken(ctx, params, client, cfg.ServerName))
	}

	check(fmt.Sprintf("database %s readable", cfg.Database), checkDatabase(ctx, cfg.Database, logger))

	if !healthy {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func checkToken(ctx context.Context, params *doctorParams, client *messaging.Client, serverName string) error {
	token, err := params.AcquireToken()
	if err != nil {
		return err
	}
	session, err := client.SessionFromToken(token)
	if err != nil {
		token.Close()
		return err
	}
	defer session.Close()

	response, err := session.WhoAmI(ctx)
	if err != nil {
		if messaging.IsMatrixError(err, messaging.ErrCodeUnknownToken) {
			return fmt.Errorf("homeserver does not recognize the token")
		}
		return err
	}
	if serverName != "" && response.UserID.Server() != serverName {
		return fmt.Errorf("token belongs to %s, not a %s user", response.UserID, serverName)
	}
	return nil
}

func checkDatabase(ctx context.Context, path string, logger *slog.Logger) error {
	store, err := roomstore.Open(roomstore.Config{Path: path, Logger: logger})
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ListRooms(ctx, func(roomstore.Room) error { return nil })
}
