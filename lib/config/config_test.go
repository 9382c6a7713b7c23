// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticketdesk.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Paths.Data == "" {
		t.Error("default data path is empty")
	}
	if !strings.HasSuffix(cfg.Paths.Data, filepath.Join("ticketdesk", "tickets.db")) {
		t.Errorf("default data path = %q", cfg.Paths.Data)
	}
	if cfg.Paths.Export != "." {
		t.Errorf("default export dir = %q, want .", cfg.Paths.Export)
	}
	if cfg.UI.Theme != "" {
		t.Errorf("default theme = %q, want empty (auto)", cfg.UI.Theme)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
paths:
  data: /var/lib/ticketdesk/tickets.db
  export: /srv/reports
ui:
  theme: light
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.Data != "/var/lib/ticketdesk/tickets.db" {
		t.Errorf("data = %q", cfg.Paths.Data)
	}
	if cfg.Paths.Export != "/srv/reports" {
		t.Errorf("export = %q", cfg.Paths.Export)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
ui:
  theme: dark
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
	if cfg.Paths.Data == "" {
		t.Error("partial file lost the default data path")
	}
}

func TestLoadFileExpandsVariables(t *testing.T) {
	t.Setenv("HOME", "/home/ada")
	t.Setenv("TICKETDESK_REPORTS", "/mnt/reports")

	path := writeConfig(t, `
paths:
  data: ${HOME}/.ticketdesk/tickets.db
  export: ${TICKETDESK_REPORTS:-/tmp}
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.Data != "/home/ada/.ticketdesk/tickets.db" {
		t.Errorf("data = %q", cfg.Paths.Data)
	}
	if cfg.Paths.Export != "/mnt/reports" {
		t.Errorf("export = %q", cfg.Paths.Export)
	}
}

func TestLoadFileExpansionDefault(t *testing.T) {
	path := writeConfig(t, `
paths:
  export: ${TICKETDESK_UNSET_VARIABLE:-/fallback}
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.Export != "/fallback" {
		t.Errorf("export = %q, want /fallback", cfg.Paths.Export)
	}
}

func TestLoadFileRejectsBadTheme(t *testing.T) {
	path := writeConfig(t, `
ui:
  theme: sepia
`)

	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "invalid ui.theme") {
		t.Errorf("LoadFile = %v, want invalid theme error", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile on a missing file succeeded")
	}
}

func TestLoadWithoutEnvUsesDefaults(t *testing.T) {
	t.Setenv("TICKETDESK_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Data != Default().Paths.Data {
		t.Errorf("Load without env = %q, want defaults", cfg.Paths.Data)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, `
paths:
  data: /elsewhere/tickets.db
`)
	t.Setenv("TICKETDESK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Data != "/elsewhere/tickets.db" {
		t.Errorf("data = %q", cfg.Paths.Data)
	}
}

func TestEnsureDataDir(t *testing.T) {
	cfg := Default()
	cfg.Paths.Data = filepath.Join(t.TempDir(), "nested", "dir", "tickets.db")

	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir: %v", err)
	}
	info, err := os.Stat(filepath.Dir(cfg.Paths.Data))
	if err != nil || !info.IsDir() {
		t.Errorf("data directory not created: %v", err)
	}
}
