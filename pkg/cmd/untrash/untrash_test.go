package untrash

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/snipstash/snip/internal/config"
	"github.com/snipstash/snip/internal/constants"
	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/state"
)

func testState(t *testing.T) (*state.State, string) {
	t.Helper()

	dir := t.TempDir()
	return &state.State{
		Config:  &config.Config{SnippetsDir: dir, Extension: ".txt"},
		Handler: handler.NewFileHandler(dir, ".txt"),
	}, dir
}

func TestUntrashCommandRequiresArgument(t *testing.T) {
	s, _ := testState(t)

	cmd := NewCmdUntrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error when no name argument is provided")
	}
}

func TestUntrashRestoresSnippet(t *testing.T) {
	s, dir := testState(t)

	trashDir := filepath.Join(dir, constants.TrashDir)
	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		t.Fatalf("create trash dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(trashDir, "greeting.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("seed trashed snippet: %v", err)
	}

	cmd := NewCmdUntrash(s)
	cmd.SetArgs([]string{"greeting"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "greeting.txt")); err != nil {
		t.Fatalf("expected snippet restored: %v", err)
	}
}

func TestUntrashMissingSnippetFails(t *testing.T) {
	s, _ := testState(t)

	cmd := NewCmdUntrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"ghost"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a snippet that is not in the trash")
	}
}
