// Package actions builds the ordered action set offered for each catalog
// result: copy, copy-and-paste, edit, remove, and the create action carried
// by the synthetic "+" result.
package actions

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/rank"
)

// clipboard funcs are indirected for tests.
var (
	writeClipboard = clipboard.WriteAll
)

// Capabilities answers what the host environment supports. Paste simulation
// varies by host, so the action list is built against this query rather
// than assumed.
type Capabilities interface {
	SupportsPaste() bool
}

// Paster simulates a paste keystroke after the clipboard has been set.
type Paster interface {
	Paste() error
}

// Editor opens a snippet file in the external editor.
type Editor interface {
	Open(path string) error
}

// Namer resolves the file name for a new snippet, typically by prompting
// the user. It is handed the proposed default.
type Namer func(proposed string) (string, error)

// Confirmer asks the user to approve a destructive operation.
type Confirmer func(prompt string) (bool, error)

// Action is one named, zero-argument operation attached to a result.
type Action struct {
	ID   string
	Name string
	Run  func() error
}

// Builder assembles actions against the snippet directory and the host
// capabilities the embedding environment injected.
type Builder struct {
	Handler *handler.FileHandler
	Editor  Editor
	Caps    Capabilities
	Paster  Paster
	Name    Namer
	Confirm Confirmer
}

// ForResult returns the actions for a ranked result, in presentation order.
// Paste comes first when supported, matching the catalog's activation
// default.
func (b *Builder) ForResult(res rank.Result) []Action {
	if res.Create {
		return []Action{{
			ID:   "add",
			Name: "Create",
			Run:  func() error { return b.createSnippet(res.CreateText) },
		}}
	}

	id := res.Entry.Identifier
	var out []Action

	if b.Caps != nil && b.Caps.SupportsPaste() {
		out = append(out, Action{
			ID:   "cp",
			Name: "Copy and paste",
			Run:  func() error { return b.copyAndPaste(id) },
		})
	}

	out = append(out,
		Action{ID: "c", Name: "Copy", Run: func() error { return b.copySnippet(id) }},
		Action{ID: "o", Name: "Edit", Run: func() error { return b.Editor.Open(b.Handler.Path(id)) }},
		Action{ID: "r", Name: "Remove", Run: func() error { return b.removeSnippet(id) }},
	)

	return out
}

// copySnippet places the snippet's current file contents on the clipboard.
// It reads the file rather than the indexed preview, which is normalized
// and truncated.
func (b *Builder) copySnippet(id string) error {
	data, err := os.ReadFile(b.Handler.Path(id))
	if err != nil {
		return fmt.Errorf("read snippet %s: %w", id, err)
	}
	return writeClipboard(string(data))
}

func (b *Builder) copyAndPaste(id string) error {
	if err := b.copySnippet(id); err != nil {
		return err
	}
	if b.Paster == nil {
		return errors.New("actions: paste not supported by host")
	}
	return b.Paster.Paste()
}

// createSnippet writes a new snippet file. An empty content means the user
// wants to author it, so the file is opened in the editor instead of being
// left blank.
func (b *Builder) createSnippet(content string) error {
	if b.Name == nil {
		return errors.New("actions: no name resolver configured")
	}

	name, err := b.Name("")
	if err != nil {
		return err
	}
	if err := handler.ValidateName(name); err != nil {
		return err
	}

	path, err := b.Handler.Create(name, content)
	if err != nil {
		return err
	}

	if content == "" {
		return b.Editor.Open(path)
	}
	return nil
}

// removeSnippet confirms with the user and then moves the file to trash.
// There is no hard-delete fallback.
func (b *Builder) removeSnippet(id string) error {
	if b.Confirm != nil {
		ok, err := b.Confirm(fmt.Sprintf("Move snippet %q to trash?", id))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	_, err := b.Handler.Trash(id)
	return err
}
