// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ember-hs/roomctl/lib/config"
	"github.com/ember-hs/roomctl/lib/secret"
	"github.com/ember-hs/roomctl/messaging"
)

// SessionConfig carries the flags shared by every command that talks to
// the homeserver. Embed it in a command's params struct and register
// its flags with AddFlags.
type SessionConfig struct {
	// ConfigPath is the --config flag: path to the roomctl config
	// file. Empty means the ROOMCTL_CONFIG environment variable, then
	// compiled-in defaults.
	ConfigPath string
	// HomeserverURL is the --homeserver flag. Overrides the config file.
	HomeserverURL string
	// TokenFile is the --token-file flag: read the access token from
	// this file, or from stdin when the value is "-".
	TokenFile string
	// Token is the --token flag: the access token itself. Intended for
	// tests and scripts; prefer --token-file or the interactive prompt,
	// which keep the token out of shell history and process listings.
	Token string
}

// AddFlags registers the session flags on flagSet.
func (s *SessionConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&s.ConfigPath, "config", "", "path to the roomctl config file")
	flagSet.StringVar(&s.HomeserverURL, "homeserver", "", "homeserver base URL (overrides the config file)")
	flagSet.StringVar(&s.TokenFile, "token-file", "", "read the access token from this file, or - for stdin")
	flagSet.StringVar(&s.Token, "token", "", "access token (prefer --token-file or the interactive prompt)")
}

// LoadConfig resolves the effective configuration: the config file (or
// defaults) with flag overrides applied.
func (s *SessionConfig) LoadConfig() (config.Config, error) {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if s.HomeserverURL != "" {
		cfg.HomeserverURL = s.HomeserverURL
	}
	return cfg, nil
}

// LoadConfigPath loads the configuration for commands that do not
// carry a full SessionConfig, such as ones that only touch the local
// database.
func LoadConfigPath(path string) (config.Config, error) {
	return config.Load(path)
}

// AcquireToken obtains the bearer token from the first available
// source: the --token flag, the --token-file flag, or an interactive
// no-echo prompt on stdin. The token lives only in the returned
// mmap-backed buffer; it is never logged or written to disk. The caller
// owns the buffer (typically by handing it to a messaging.Session).
func (s *SessionConfig) AcquireToken() (*secret.Buffer, error) {
	switch {
	case s.Token != "":
		return secret.NewFromString(s.Token)
	case s.TokenFile != "":
		buffer, err := secret.ReadFromPath(s.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("reading token from %s: %w", s.TokenFile, err)
		}
		return buffer, nil
	default:
		return secret.Prompt("Access token", os.Stdin, os.Stderr)
	}
}

// Connect resolves the configuration, acquires the token, and returns
// an authenticated session. The caller must Close the session.
func (s *SessionConfig) Connect(cfg config.Config, logger *slog.Logger) (*messaging.Session, error) {
	client, err := messaging.NewClient(messaging.ClientConfig{
		HomeserverURL: cfg.HomeserverURL,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.AcquireToken()
	if err != nil {
		return nil, err
	}

	session, err := client.SessionFromToken(token)
	if err != nil {
		token.Close()
		return nil, err
	}
	return session, nil
}
