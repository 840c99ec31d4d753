package trash

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

func TestTrashCommandRequiresArgument(t *testing.T) {
	s, _ := testState(t)

	cmd := NewCmdTrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error when no name argument is provided")
	}
}

func TestTrashForceMovesSnippet(t *testing.T) {
	s, dir := testState(t)

	if err := os.WriteFile(filepath.Join(dir, "greeting.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("seed snippet: %v", err)
	}

	cmd := NewCmdTrash(s)
	cmd.SetArgs([]string{"greeting", "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "greeting.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected snippet to be moved out of the directory")
	}
	trashed := filepath.Join(dir, constants.TrashDir, "greeting.txt")
	if _, err := os.Stat(trashed); err != nil {
		t.Fatalf("expected snippet in trash: %v", err)
	}
}

func TestTrashForceMissingSnippetFails(t *testing.T) {
	s, _ := testState(t)

	cmd := NewCmdTrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"ghost", "--force"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing snippet")
	}
}
