// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roomctl.yaml")
	err := os.WriteFile(configPath, []byte("homeserver_url: http://from-file:8008\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	sessionConfig := SessionConfig{
		ConfigPath:    configPath,
		HomeserverURL: "http://from-flag:8008",
	}
	cfg, err := sessionConfig.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HomeserverURL != "http://from-flag:8008" {
		t.Errorf("HomeserverURL = %q, want the flag value", cfg.HomeserverURL)
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roomctl.yaml")
	body := "homeserver_url: http://ember:8008\ndefault_room: '!ops:ember.local'\n"
	if err := os.WriteFile(configPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	sessionConfig := SessionConfig{ConfigPath: configPath}
	cfg, err := sessionConfig.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HomeserverURL != "http://ember:8008" {
		t.Errorf("HomeserverURL = %q", cfg.HomeserverURL)
	}
	if cfg.DefaultRoom != "!ops:ember.local" {
		t.Errorf("DefaultRoom = %q", cfg.DefaultRoom)
	}
	// Fields the file does not set keep their defaults.
	if cfg.ServerName != "ember.local" {
		t.Errorf("ServerName = %q, want the default", cfg.ServerName)
	}
}

func TestAcquireTokenFromFlag(t *testing.T) {
	sessionConfig := SessionConfig{Token: "syt_flag_token"}
	buffer, err := sessionConfig.AcquireToken()
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	defer buffer.Close()
	if buffer.String() != "syt_flag_token" {
		t.Errorf("token = %q", buffer.String())
	}
}

func TestAcquireTokenFromFile(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenPath, []byte("syt_file_token\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	sessionConfig := SessionConfig{TokenFile: tokenPath}
	buffer, err := sessionConfig.AcquireToken()
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	defer buffer.Close()
	if buffer.String() != "syt_file_token" {
		t.Errorf("token = %q, want trailing newline stripped", buffer.String())
	}
}

func TestAcquireTokenFlagBeatsFile(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenPath, []byte("syt_file_token"), 0o600); err != nil {
		t.Fatal(err)
	}

	sessionConfig := SessionConfig{Token: "syt_flag_token", TokenFile: tokenPath}
	buffer, err := sessionConfig.AcquireToken()
	if err != nil {
		t.Fatalf("AcquireToken: %v", err)
	}
	defer buffer.Close()
	if buffer.String() != "syt_flag_token" {
		t.Errorf("token = %q, want the --token value to win", buffer.String())
	}
}

func TestAcquireTokenMissingFile(t *testing.T) {
	sessionConfig := SessionConfig{TokenFile: filepath.Join(t.TempDir(), "absent")}
	if _, err := sessionConfig.AcquireToken(); err == nil {
		t.Fatal("AcquireToken succeeded with a missing token file")
	}
}
