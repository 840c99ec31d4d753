package snippets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snipstash/snip/internal/config"
	"github.com/snipstash/snip/internal/editor"
	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/index"
	"github.com/snipstash/snip/internal/state"
)

func testState(t *testing.T) (*state.State, string) {
	t.Helper()

	dir := t.TempDir()
	coordinator := index.NewCoordinator(dir, ".txt")
	t.Cleanup(func() { _ = coordinator.Close() })

	return &state.State{
		Config:  &config.Config{SnippetsDir: dir, Extension: ".txt"},
		Handler: handler.NewFileHandler(dir, ".txt"),
		Editor:  &editor.Editor{Command: "true"},
		Index:   coordinator,
	}, dir
}

func rescan(t *testing.T, s *state.State) {
	t.Helper()

	s.Index.RequestRescan()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Index.WaitIdle(ctx); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}
}

func TestBrowseShowsCatalogBeforeFirstKeystroke(t *testing.T) {
	s, dir := testState(t)

	for _, name := range []string{"greeting.txt", "signature.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644); err != nil {
			t.Fatalf("write snippet: %v", err)
		}
	}
	rescan(t, s)

	m := NewModel(s)

	// The startup commands must feed the catalog into the list without any
	// user input or directory change.
	msg := m.Init()()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch of startup commands, got %T", msg)
	}

	var model tea.Model = m
	ranked := false
	for _, c := range batch {
		out := c()
		if _, ok := out.(rerankMsg); ok {
			model, _ = model.Update(out)
			ranked = true
			break
		}
	}
	if !ranked {
		t.Fatalf("startup commands never requested a rank of the catalog")
	}

	got := model.(Model)
	if n := len(got.list.Items()); n != 2 {
		t.Fatalf("browse list shows %d items, want 2", n)
	}
}

func TestNamingModeCreatesSnippetFromQueryText(t *testing.T) {
	s, dir := testState(t)

	m := NewModel(s)
	model, _ := m.enterNaming("hello world")

	mm := model.(Model)
	mm.input.SetValue("greeting")

	updated, _ := mm.handleNamingKey(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)
	if got.naming {
		t.Fatalf("expected naming mode to end after a successful create")
	}

	data, err := os.ReadFile(filepath.Join(dir, "greeting.txt"))
	if err != nil {
		t.Fatalf("read created snippet: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestNamingModeRejectsConflict(t *testing.T) {
	s, dir := testState(t)

	if err := os.WriteFile(filepath.Join(dir, "greeting.txt"), []byte("old"), 0o644); err != nil {
		t.Fatalf("seed snippet: %v", err)
	}

	m := NewModel(s)
	model, _ := m.enterNaming("new text")

	mm := model.(Model)
	mm.input.SetValue("greeting")

	updated, _ := mm.handleNamingKey(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)
	if !got.naming {
		t.Fatalf("expected naming mode to stay active after a conflict")
	}

	data, err := os.ReadFile(filepath.Join(dir, "greeting.txt"))
	if err != nil {
		t.Fatalf("read snippet: %v", err)
	}
	if string(data) != "old" {
		t.Fatalf("conflicting create overwrote the snippet: %q", data)
	}
}
