// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HomeserverURL != "http://localhost:8008" {
		t.Errorf("HomeserverURL = %q", cfg.HomeserverURL)
	}
	if cfg.ServerName != "ember.local" {
		t.Errorf("ServerName = %q", cfg.ServerName)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomctl.yaml")
	content := `
homeserver_url: https://matrix.example.com
database: /srv/ember/homeserver.db
default_room: "!ops:example.com"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HomeserverURL != "https://matrix.example.com" {
		t.Errorf("HomeserverURL = %q", cfg.HomeserverURL)
	}
	if cfg.Database != "/srv/ember/homeserver.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
	if cfg.DefaultRoom != "!ops:example.com" {
		t.Errorf("DefaultRoom = %q", cfg.DefaultRoom)
	}
	// Fields absent from the file keep their defaults.
	if cfg.ServerName != "ember.local" {
		t.Errorf("ServerName = %q, want default", cfg.ServerName)
	}
}

func TestLoadEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomctl.yaml")
	if err := os.WriteFile(path, []byte("server_name: env.example.com\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerName != "env.example.com" {
		t.Errorf("ServerName = %q, want %q", cfg.ServerName, "env.example.com")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("homeserver_url: [\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
