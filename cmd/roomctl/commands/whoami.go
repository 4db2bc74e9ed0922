// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ember-hs/roomctl/cmd/roomctl/cli"
)

type whoamiParams struct {
	cli.SessionConfig
}

func whoamiCommand() *cli.Command {
	var params whoamiParams
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the user the access token belongs to",
		Usage:   "roomctl whoami",
		Description: `Ask the homeserver which user the access token belongs to. Useful to
verify a token before running membership operations with it.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			params.SessionConfig.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			return runWhoAmI(&params, args, os.Stdout)
		},
	}
}

func runWhoAmI(params *whoamiParams, args []string, stdout io.Writer) error {
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := session.WhoAmI(ctx)
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}
	fmt.Fprintln(stdout, response.UserID)
	if response.DeviceID != "" {
		fmt.Fprintf(stdout, "device: %s\n", response.DeviceID)
	}
	return nil
}
