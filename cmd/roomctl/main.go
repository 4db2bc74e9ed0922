// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

// Command roomctl is the operator tool for the Ember homeserver: room
// membership through the Matrix client-server API and read-only
// inspection of the homeserver database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ember-hs/roomctl/cmd/roomctl/commands"
)

func main() {
	if err := commands.Root().Execute(os.Args[1:]); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
