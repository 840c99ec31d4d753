package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/snipstash/snip/internal/config"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadEmptyConfigFillsDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SnippetsDir != config.DefaultSnippetsDir(home) {
		t.Fatalf("unexpected snippets dir %q", cfg.SnippetsDir)
	}
	if cfg.Extension != ".txt" {
		t.Fatalf("unexpected extension %q", cfg.Extension)
	}
	if cfg.Editor == "" {
		t.Fatalf("expected a default editor")
	}
	if cfg.SupportsPaste() {
		t.Fatalf("paste should be unsupported by default")
	}
}

func TestLoadNormalizesExtension(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "extension: snip\n")

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".snip" {
		t.Fatalf("extension not normalized: %q", cfg.Extension)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Editor = "vim"
	cfg.PasteCmd = "xdotool"
	cfg.PasteArgs = []string{"key", "ctrl+v"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Editor != "vim" {
		t.Fatalf("editor did not round trip: %q", reloaded.Editor)
	}
	if !reloaded.SupportsPaste() {
		t.Fatalf("paste support did not round trip")
	}
}

func TestEnsureConfigExistsCreatesFile(t *testing.T) {
	home := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists: %v", err)
	}
	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	// Idempotent on a second call.
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("second EnsureConfigExists: %v", err)
	}
}
