// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the config file. The
// --config flag takes precedence when both are set.
const EnvVar = "ROOMCTL_CONFIG"

// Config is the roomctl configuration.
type Config struct {
	// HomeserverURL is the base URL of the Matrix homeserver
	// (e.g., "http://localhost:8008").
	HomeserverURL string `yaml:"homeserver_url"`

	// ServerName is the homeserver's Matrix server name, used as the
	// default server_name parameter for federated joins.
	ServerName string `yaml:"server_name"`

	// Database is the filesystem path to the homeserver's SQLite
	// database, read by the room inspector. Never written.
	Database string `yaml:"database"`

	// DefaultRoom is the room ID that membership commands target when
	// no room argument is given.
	DefaultRoom string `yaml:"default_room"`
}

// Default returns the compiled-in configuration: a homeserver running
// locally on the conventional development port.
func Default() Config {
	return Config{
		HomeserverURL: "http://localhost:8008",
		ServerName:    "ember.local",
		Database:      "/var/lib/ember/homeserver.db",
	}
}

// Load reads the configuration. flagPath is the --config flag value; if
// empty, the ROOMCTL_CONFIG environment variable is consulted. When
// neither names a file, the defaults are returned unchanged. Fields
// absent from the file keep their default values.
func Load(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
